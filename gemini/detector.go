// Package gemini implements LLM boundary detection using Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mgirard/sheetex"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// systemPrompt instructs the model to return product boundaries as a
// JSON array. The stamped page markers and the structural analysis give
// it an unambiguous page-identity anchor.
const systemPrompt = `You are an expert document analyzer specializing in technical catalogs and specification sheets.
Your task is to analyze document content and identify boundaries between different technical sheets in product catalogs.

Every page of the document carries an explicit marker of the form "PAGE-ID: n" at the top right. Always report page numbers using these markers, never your own page counting.

If you encounter a table of contents, use it to help you identify the boundaries of the technical sheets.

You must detect the language of the document and provide the output in the same language.

Important rules:
- A technical sheet MUST describe exactly ONE product (not product categories or multiple products)
- A single technical sheet can span one or multiple pages
- Each boundary you identify should represent the start of a new product technical sheet
- Subtitles can identify different technical sheets for the same family of products (same title)

Do not include any other information or explanations. Avoid unnecessary details, preambles, or conclusions.

Your output MUST be valid JSON in this exact format:
[
    {
        "product": "product title or code",
        "confidence": "your confidence level (0.0-1.0)",
        "pages": "a list of the page numbers where the technical sheet is located eg. [1, 2, 3]",
        "reason": "explanation for boundary detection"
    }
]`

// Ensure Detector implements sheetex.BoundaryDetector at compile time.
var _ sheetex.BoundaryDetector = (*Detector)(nil)

// Detector implements sheetex.BoundaryDetector using Google Gemini.
type Detector struct {
	client *genai.Client
	model  string
}

// NewDetector creates a new Detector. An empty model selects
// DefaultModel.
func NewDetector(client *genai.Client, model string) *Detector {
	if model == "" {
		model = DefaultModel
	}
	return &Detector{client: client, model: model}
}

// DetectBoundaries sends the stamped catalog and its structural
// analysis to the model and returns the raw response text. No retry is
// performed here; retrying is the caller's responsibility.
func (d *Detector) DetectBoundaries(ctx context.Context, pdfPath string, analysis *sheetex.DocumentAnalysis) (string, error) {
	if pdfPath == "" {
		return "", sheetex.Errorf(sheetex.EINVALID, "document path required")
	}

	data, err := os.ReadFile(pdfPath)
	if err != nil {
		return "", sheetex.Errorf(sheetex.EUNREADABLE, "cannot read document %q: %v", pdfPath, err)
	}

	parts := []*genai.Part{
		{Text: BuildUserPrompt(analysis)},
		{InlineData: &genai.Blob{MIMEType: "application/pdf", Data: data}},
	}

	result, err := d.client.Models.GenerateContent(ctx, d.model,
		[]*genai.Content{{Role: genai.RoleUser, Parts: parts}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", sheetex.Errorf(sheetex.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for boundary detection
// calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt carrying the structural
// analysis as context. A nil analysis yields a prompt without context.
func BuildUserPrompt(analysis *sheetex.DocumentAnalysis) string {
	var sb strings.Builder
	if analysis != nil {
		if data, err := json.MarshalIndent(analysis, "", "  "); err == nil {
			sb.WriteString("Document analysis information: ")
			sb.Write(data)
			sb.WriteString("\n\n")
			fmt.Fprintf(&sb, "The document contains exactly %d pages.\n\n", analysis.TotalPages)
		}
	}
	sb.WriteString("Identify the technical sheet boundaries in the attached catalog.")
	return sb.String()
}
