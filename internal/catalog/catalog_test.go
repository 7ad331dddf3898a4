package catalog

import (
	"testing"

	"file-converter/internal/model"
)

// ---------------------------------------------------------------------------
// Normalization tests
// ---------------------------------------------------------------------------

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"png", "png"},
		{".PNG", "png"},
		{"JPEG", "jpg"},
		{".jpeg", "jpg"},
		{"jpg", "jpg"},
		{"tif", "tiff"},
		{"..TIF", "tiff"},
		{"tiff", "tiff"},
		{"webp", "webp"},
		{"", ""},
	}

	for _, tt := range cases {
		t.Run(tt.in, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"png", ".PNG", "JPEG", "jpeg", "tif", ".tiff", "mp4", "", "xlsx", "..Jpg"}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

// ---------------------------------------------------------------------------
// Suggestion tests
// ---------------------------------------------------------------------------

func TestSuggestionsExcludeOwnFormat(t *testing.T) {
	categories := map[model.Category][]string{
		model.CategoryImage:        {"png", "jpg", "jpeg", "webp", "pdf", "tiff", "tif", "bmp", "gif", "ico"},
		model.CategoryAudio:        {"mp3", "wav", "ogg", "flac", "aac", "m4a"},
		model.CategoryVideo:        {"mp4", "webm", "gif", "avi", "mov", "mkv"},
		model.CategorySpreadsheet:  {"csv", "xlsx", "xls", "pdf"},
		model.CategoryDocument:     {"pdf", "txt", "odt", "docx", "html", "rtf"},
		model.CategoryPresentation: {"pdf", "pptx", "odp"},
		model.CategoryPDF:          {"png", "jpg", "jpeg", "webp", "txt"},
	}

	for category, row := range categories {
		for _, input := range row {
			got := Suggestions(category, input)
			for _, s := range got {
				if Normalize(s) == Normalize(input) {
					t.Errorf("Suggestions(%s, %q) contains the input's own format %q", category, input, s)
				}
			}
		}
	}
}

func TestSuggestionsAliasExclusion(t *testing.T) {
	// A jpg input must exclude both spellings of its format.
	got := Suggestions(model.CategoryImage, "jpg")
	want := []string{"png", "webp", "pdf", "tiff", "tif", "bmp", "gif", "ico"}

	if len(got) != len(want) {
		t.Fatalf("Suggestions(image, jpg) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Suggestions(image, jpg)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSuggestionsPreserveOrder(t *testing.T) {
	got := Suggestions(model.CategoryVideo, "gif")
	want := []string{"mp4", "webm", "avi", "mov", "mkv"}

	if len(got) != len(want) {
		t.Fatalf("Suggestions(video, gif) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Suggestions(video, gif)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSuggestionsUnknownCategory(t *testing.T) {
	if got := Suggestions(model.CategoryUnknown, "bin"); len(got) != 0 {
		t.Errorf("Suggestions(unknown, bin) = %v, want empty", got)
	}
}

// ---------------------------------------------------------------------------
// Target validation tests
// ---------------------------------------------------------------------------

func TestIsValidTarget(t *testing.T) {
	cases := []struct {
		category model.Category
		target   string
		want     bool
	}{
		{model.CategoryImage, "png", true},
		{model.CategoryImage, "JPEG", true},
		{model.CategoryImage, ".tif", true},
		{model.CategoryImage, "ico", true},
		{model.CategoryImage, "mp3", false},
		{model.CategoryAudio, "bmp", false},
		{model.CategoryAudio, "m4a", true},
		{model.CategoryVideo, "gif", true},
		{model.CategoryVideo, "txt", false},
		{model.CategorySpreadsheet, "xls", true},
		{model.CategorySpreadsheet, "csv", true},
		{model.CategorySpreadsheet, "docx", false},
		{model.CategoryDocument, "rtf", true},
		{model.CategoryDocument, "jpeg", false},
		{model.CategoryPresentation, "odp", true},
		{model.CategoryPresentation, "html", false},
		{model.CategoryPDF, "webp", true},
		{model.CategoryPDF, "jpeg", true},
		{model.CategoryPDF, "tif", false},
		{model.CategoryUnknown, "pdf", false},
	}

	for _, tt := range cases {
		t.Run(string(tt.category)+"_"+tt.target, func(t *testing.T) {
			if got := IsValidTarget(tt.category, tt.target); got != tt.want {
				t.Errorf("IsValidTarget(%s, %q) = %v, want %v", tt.category, tt.target, got, tt.want)
			}
		})
	}
}

// A target equal to the input's own extension stays valid even though it is
// filtered out of suggestions.
func TestIsValidTargetAllowsReencode(t *testing.T) {
	if !IsValidTarget(model.CategoryImage, "png") {
		t.Error("re-encoding an image to its own format should validate")
	}
}

// ---------------------------------------------------------------------------
// Classification tests
// ---------------------------------------------------------------------------

func TestClassify(t *testing.T) {
	cases := []struct {
		filename string
		mime     string
		want     model.Category
	}{
		{"report.PDF", "", model.CategoryPDF},
		{"photo.JPG", "", model.CategoryImage},
		{"clip.wmv", "", model.CategoryVideo},
		{"song.wma", "", model.CategoryAudio},
		{"slides.PPT", "", model.CategoryPresentation},
		{"legacy.doc", "", model.CategoryDocument},
		{"data", "text/csv", model.CategorySpreadsheet},
		{"blob", "image/png", model.CategoryImage},
		{"blob", "audio/mpeg", model.CategoryAudio},
		{"blob", "video/mp4", model.CategoryVideo},
		{"blob", "application/pdf", model.CategoryPDF},
		{"blob", "application/msword", model.CategoryDocument},
		// Extension beats any mime hint.
		{"notes.txt", "application/pdf", model.CategoryDocument},
		{"archive.zip", "application/zip", model.CategoryUnknown},
		{"noextension", "", model.CategoryUnknown},
	}

	for _, tt := range cases {
		t.Run(tt.filename+"_"+tt.mime, func(t *testing.T) {
			if got := Classify(tt.filename, tt.mime); got != tt.want {
				t.Errorf("Classify(%q, %q) = %s, want %s", tt.filename, tt.mime, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Mime sniffing tests
// ---------------------------------------------------------------------------

func TestDetectMime(t *testing.T) {
	pngHeader := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	cases := []struct {
		name     string
		head     []byte
		declared string
		filename string
		want     string
	}{
		{"sniffed png", pngHeader, "", "pic.png", "image/png"},
		{"sniffed text", []byte("hello world"), "application/octet-stream", "notes", "text/plain"},
		{"declared wins over octet sniff", []byte{0x00, 0x01, 0x02, 0x03}, "audio/mpeg", "song", "audio/mpeg"},
		{"empty head falls to declared", nil, "video/mp4", "clip", "video/mp4"},
		{"empty head falls to extension", []byte{}, "", "doc.pdf", "application/pdf"},
		{"extension fallback", nil, "", "doc.pdf", "application/pdf"},
		{"nothing matches", []byte{0x00, 0x01}, "", "blob", ""},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectMime(tt.head, tt.declared, tt.filename); got != tt.want {
				t.Errorf("DetectMime = %q, want %q", got, tt.want)
			}
		})
	}
}
