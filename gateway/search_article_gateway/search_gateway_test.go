package search_article_gateway

import (
	"errors"
	"reflect"
	"testing"

	"scholarly/domain"
)

const searchFeedTwoEntries = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:arxiv="http://arxiv.org/schemas/atom">
  <title>ArXiv Query: search_query=ti:attention</title>
  <entry>
    <id>http://arxiv.org/abs/1706.03762v7</id>
    <title>Attention Is
  All You Need</title>
    <summary>  The dominant sequence transduction models are based on complex
recurrent or convolutional neural networks.  </summary>
    <published>2017-06-12T17:57:34Z</published>
    <author><name>Ashish Vaswani</name></author>
    <author><name>Noam Shazeer</name></author>
    <author><name>Niki Parmar</name></author>
    <link href="http://arxiv.org/abs/1706.03762v7" rel="alternate" type="text/html"/>
    <link title="pdf" href="http://arxiv.org/pdf/1706.03762v7" rel="related" type="application/pdf"/>
    <arxiv:primary_category xmlns:arxiv="http://arxiv.org/schemas/atom" term="cs.CL" scheme="http://arxiv.org/schemas/atom"/>
    <category term="cs.CL" scheme="http://arxiv.org/schemas/atom"/>
    <category term="cs.LG" scheme="http://arxiv.org/schemas/atom"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/9999.00001v1</id>
    <title>An Entry Without Category Data</title>
    <summary>Nothing categorical here.</summary>
    <published>2024-01-15T09:00:00Z</published>
    <author><name>Sole Author</name></author>
    <link href="http://arxiv.org/abs/9999.00001v1" rel="alternate" type="text/html"/>
  </entry>
</feed>`

const searchFeedEmpty = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>ArXiv Query: search_query=all:nosuchtermanywhere</title>
</feed>`

const searchFeedMirroredLink = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>ArXiv Query: search_query=ti:mirror</title>
  <entry>
    <id>http://arxiv.org/abs/2101.00001v2</id>
    <title>An Entry Served Through a Mirror</title>
    <summary>The alternate link points somewhere else entirely.</summary>
    <published>2021-01-01T00:00:00Z</published>
    <author><name>Mirror Author</name></author>
    <link href="http://mirror.example.org/abs/2101.00001" rel="alternate" type="text/html"/>
  </entry>
</feed>`

func TestParseSearchFeed(t *testing.T) {
	articles, err := ParseSearchFeed([]byte(searchFeedTwoEntries))
	if err != nil {
		t.Fatalf("ParseSearchFeed() error: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2", len(articles))
	}

	first := articles[0]
	if first.ID != "http://arxiv.org/abs/1706.03762v7" {
		t.Errorf("unexpected ID %q", first.ID)
	}
	if first.Title != "Attention Is All You Need" {
		t.Errorf("title whitespace not collapsed: %q", first.Title)
	}
	if first.Summary != "The dominant sequence transduction models are based on complex recurrent or convolutional neural networks." {
		t.Errorf("summary whitespace not collapsed: %q", first.Summary)
	}
	wantAuthors := []string{"Ashish Vaswani", "Noam Shazeer", "Niki Parmar"}
	if !reflect.DeepEqual(first.Authors, wantAuthors) {
		t.Errorf("authors = %v, want %v in document order", first.Authors, wantAuthors)
	}
	if first.Link != "http://arxiv.org/abs/1706.03762v7" {
		t.Errorf("unexpected primary link %q", first.Link)
	}
	if first.PDFLink != "http://arxiv.org/pdf/1706.03762v7" {
		t.Errorf("pdf link not selected by title attribute: %q", first.PDFLink)
	}
	// Primary category leads, duplicate dropped.
	wantCategories := []string{"cs.CL", "cs.LG"}
	if !reflect.DeepEqual(first.Categories, wantCategories) {
		t.Errorf("categories = %v, want %v", first.Categories, wantCategories)
	}
	if first.PublishedParsed.IsZero() {
		t.Error("published timestamp not parsed")
	}

	second := articles[1]
	if !reflect.DeepEqual(second.Categories, []string{domain.UncategorizedTag}) {
		t.Errorf("entry without categories should fall back to %q, got %v",
			domain.UncategorizedTag, second.Categories)
	}
	if second.PDFLink != "" {
		t.Errorf("entry without pdf link yielded %q", second.PDFLink)
	}
}

// The same document must always yield the same article list.
// The canonical link is the entry ID itself; a diverging alternate
// href must not replace it.
func TestParseSearchFeedLinkIsEntryID(t *testing.T) {
	articles, err := ParseSearchFeed([]byte(searchFeedMirroredLink))
	if err != nil {
		t.Fatalf("ParseSearchFeed error: %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("expected 1 article, got %d", len(articles))
	}
	if articles[0].Link != "http://arxiv.org/abs/2101.00001v2" {
		t.Errorf("link = %q, want the entry id", articles[0].Link)
	}
}

func TestParseSearchFeedDeterministic(t *testing.T) {
	first, err := ParseSearchFeed([]byte(searchFeedTwoEntries))
	if err != nil {
		t.Fatalf("first parse error: %v", err)
	}
	second, err := ParseSearchFeed([]byte(searchFeedTwoEntries))
	if err != nil {
		t.Fatalf("second parse error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two parses of the same document differ")
	}
}

func TestParseSearchFeedZeroResults(t *testing.T) {
	articles, err := ParseSearchFeed([]byte(searchFeedEmpty))
	if err != nil {
		t.Fatalf("empty result set must not be an error, got %v", err)
	}
	if len(articles) != 0 {
		t.Errorf("got %d articles, want 0", len(articles))
	}
}

func TestParseSearchFeedMalformed(t *testing.T) {
	malformed := [][]byte{
		[]byte("this is not xml"),
		[]byte("<feed><entry></feed>"),
		{},
	}

	for _, body := range malformed {
		_, err := ParseSearchFeed(body)
		if !errors.Is(err, domain.ErrFeedParse) {
			t.Errorf("malformed body %q: error = %v, want ErrFeedParse", body, err)
		}
	}
}
