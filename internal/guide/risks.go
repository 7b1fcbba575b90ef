package guide

import (
	"fmt"
	"strings"

	"github.com/storyflow/techguide/internal/registry"
)

type risk struct {
	Risk       string
	Impact     string
	Mitigation string
}

var technicalRisks = []risk{
	{
		Risk:       "Inconsistent AI Output",
		Impact:     "Generated scenes lack visual or tonal consistency, creating a disjointed video.",
		Mitigation: "Use highly structured prompts. For images, prepend a consistent style prefix (e.g., 'minimalist flat illustration style, ...'). For script analysis, use `responseSchema` to enforce JSON output.",
	},
	{
		Risk:       "Long Processing Times",
		Impact:     "Users abandon the process if video generation takes too long, leading to poor time-to-value.",
		Mitigation: "Use an asynchronous job queue. Provide real-time progress updates on the UI (e.g., 'Generating scene 2 of 5...'). Process scenes in parallel to reduce total wait time.",
	},
	{
		Risk:       "API Rate Limiting/Errors",
		Impact:     "Generation jobs fail, leading to user frustration and incomplete videos.",
		Mitigation: "Implement an exponential backoff retry mechanism for all API calls. Log errors for monitoring. Control job concurrency to stay within API rate limits.",
	},
	{
		Risk:       "Cost Overruns",
		Impact:     "Uncontrolled API usage leads to an unprofitable service, especially from free tier users.",
		Mitigation: "Strictly enforce free tier limits. Implement caching for identical requests. Use cost-effective models like `gemini-2.5-flash`. Set up billing alerts on your Google Cloud project.",
	},
	{
		Risk:       "Vendor Lock-in",
		Impact:     "High dependency on the Gemini API makes it difficult to switch providers if costs increase or services change.",
		Mitigation: "Abstract all API calls behind your own service layer (e.g., `aiService.generateImage()`). This makes it easier to swap out the underlying implementation with a different provider in the future.",
	},
}

const riskHeading = "Technical Risk Mitigation"

func renderRiskMitigation() registry.Block {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", riskHeading)
	b.WriteString("Proactively addressing potential technical challenges is key to a smooth development process and a reliable product.\n\n")

	b.WriteString("| Risk | Potential Impact | Mitigation Strategy |\n")
	b.WriteString("|------|------------------|---------------------|\n")
	for _, r := range technicalRisks {
		fmt.Fprintf(&b, "| **%s** | %s | %s |\n", cell(r.Risk), cell(r.Impact), cell(r.Mitigation))
	}

	return registry.Block{Title: riskHeading, Markdown: b.String()}
}

// cell escapes pipes so free text cannot split a table column.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
