package folio

// BlogPost is the core content type stored in SQLite and rendered by templates.
type BlogPost struct {
	Title     string
	Date      string
	Tags      []string
	Summary   string
	Link      string
	Slug      string
	Content   string
	Published bool
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// Image is an uploaded file under <static>/uploads, tracked in SQLite.
type Image struct {
	Filename     string
	OriginalName string
	Width        int
	Height       int
	Size         int
	UploadedAt   string
}

// Book is one entry of content/books.yaml.
type Book struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Cover  string `yaml:"cover"`
	Note   string `yaml:"note"`
	URL    string `yaml:"url"`
	// Hero marks the book featured above the grid. It is not part of the
	// grid and never enters the viewer.
	Hero bool `yaml:"hero"`
}

// Photo is one entry of content/photos.yaml.
type Photo struct {
	Src     string `yaml:"src"`
	Alt     string `yaml:"alt"`
	Caption string `yaml:"caption"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
}
