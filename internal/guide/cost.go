package guide

import (
	"fmt"
	"strings"

	"github.com/storyflow/techguide/internal/registry"
)

type optimizationPoint struct {
	Title       string
	Description string
}

var costOptimizations = []optimizationPoint{
	{
		Title:       "Use 'Flash' Models",
		Description: "Default to `gemini-2.5-flash` for text tasks and `gemini-2.5-flash-image` for images. They offer the best balance of cost and performance for this use case. Avoid larger models unless a 'Pro' user tier requires higher quality.",
	},
	{
		Title:       "Cache AI Responses",
		Description: "If a user regenerates a scene with the exact same text and style, serve the previously generated assets from your storage instead of calling the APIs again. Hash the inputs to create a unique cache key.",
	},
	{
		Title:       "Optimize Asset Storage",
		Description: "Implement lifecycle policies on your cloud storage. Move older, infrequently accessed assets to cheaper storage tiers (e.g., S3 Glacier). Compress images and audio where possible.",
	},
	{
		Title:       "Limit Free Tier Usage",
		Description: "Strictly enforce the 3 videos/month limit on the free tier. Also, consider limiting video length (e.g., max 10 scenes) for free users to prevent abuse and control costs.",
	},
	{
		Title:       "Efficient Job Processing",
		Description: "Use a queue system to process jobs. This allows you to control concurrency, preventing spikes in API calls that could lead to higher costs or hitting rate limits. It also makes your system more resilient.",
	},
	{
		Title:       "Preview Before Full Render",
		Description: "Generate static image thumbnails and audio clips for scene previews first. Only trigger the more expensive video generation/stitching process once the user approves the sequence, reducing wasted resources.",
	},
}

const costHeading = "Cost Optimization Strategies"

func renderCostOptimization() registry.Block {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", costHeading)
	b.WriteString("Managing AI pipeline costs is critical for profitability. These strategies aim to reduce expenses without a significant drop in output quality.\n")

	for _, p := range costOptimizations {
		fmt.Fprintf(&b, "\n#### %s\n\n%s\n", p.Title, p.Description)
	}

	return registry.Block{Title: costHeading, Markdown: b.String()}
}
