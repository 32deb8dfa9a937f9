package ingest

import "testing"

func TestHTMLToTextBlocks(t *testing.T) {
	got, err := HTMLToText(`<html><body><h1>Title</h1><p>First para.</p><ul><li>One</li><li>Two</li></ul></body></html>`)
	if err != nil {
		t.Fatalf("HTMLToText: %v", err)
	}
	if got != "Title\nFirst para.\nOne\nTwo" {
		t.Errorf("got %q", got)
	}
}

func TestHTMLToTextSkipsNonContent(t *testing.T) {
	got, err := HTMLToText(`<html><head><script>var x=1;</script></head>` +
		`<body><noscript>enable js</noscript><p>Visible.</p><style>.a{}</style></body></html>`)
	if err != nil {
		t.Fatalf("HTMLToText: %v", err)
	}
	if got != "Visible." {
		t.Errorf("got %q", got)
	}
}

func TestHTMLToTextInlineStaysJoined(t *testing.T) {
	got, err := HTMLToText(`<p>The <b>vendor</b> may <i>terminate</i>.</p>`)
	if err != nil {
		t.Fatalf("HTMLToText: %v", err)
	}
	if got != "The vendor may terminate." {
		t.Errorf("got %q", got)
	}
}

func TestLooksLikeHTML(t *testing.T) {
	if !looksLikeHTML([]byte("<!DOCTYPE html><html><body>x</body></html>")) {
		t.Error("doctype not recognized")
	}
	if !looksLikeHTML([]byte("  <HTML><body>x</body>")) {
		t.Error("upper-case tag not recognized")
	}
	if looksLikeHTML([]byte("Section 1. Plain contract text.")) {
		t.Error("plain text misdetected as HTML")
	}
}
