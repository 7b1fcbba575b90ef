package guide

import (
	"fmt"
	"strings"

	"github.com/storyflow/techguide/internal/diagrams"
	"github.com/storyflow/techguide/internal/registry"
)

type component struct {
	Name string
	Tech string
}

type flowStep struct {
	Title       string
	Description string
	AI          bool // step calls a generative model
}

var architectureComponents = []component{
	{"Frontend", "Next.js on Vercel"},
	{"Backend API", "Node.js/Express"},
	{"Database", "PostgreSQL"},
	{"Job Queue", "Redis + Bull Queue"},
	{"AI Services", "Google Gemini API Suite"},
	{"Storage", "Cloud Storage (e.g., AWS S3, Google Cloud Storage)"},
}

var pipelineFlow = []flowStep{
	{
		Title:       "Script Submission (Frontend)",
		Description: "User inputs their script and selects style options in the React app.",
	},
	{
		Title:       "Job Creation (Backend API)",
		Description: "The Node.js server receives the request, creates a new video project in the database, and adds a 'start-video-job' task to the Redis queue.",
	},
	{
		Title:       "Script Analysis (Worker)",
		Description: "A worker process picks up the job and sends the script to the Gemini API for scene breakdown, generating structured JSON data.",
		AI:          true,
	},
	{
		Title:       "Parallel Asset Generation (Worker)",
		Description: "The worker creates parallel sub-jobs for each scene: one for image generation and one for TTS. This allows for faster processing.",
	},
	{
		Title:       "Image & Audio Generation (Worker -> Gemini)",
		Description: "Sub-workers call Gemini Image and TTS APIs, then upload the resulting assets (images, audio files) to cloud storage, saving the URLs in the database.",
		AI:          true,
	},
	{
		Title:       "Video Scene Assembly (Worker -> Gemini)",
		Description: "Once all assets for a scene are ready, a job is sent to Gemini's Veo model to create a short video clip from the image and audio.",
		AI:          true,
	},
	{
		Title:       "Final Video Concatenation (Worker)",
		Description: "After all scene clips are generated, a final worker job stitches them together (using FFmpeg or a similar tool) with background music into the final video.",
	},
	{
		Title:       "Notification & Delivery (Backend -> Frontend)",
		Description: "The worker updates the video status to 'complete' in the database. The frontend polls for this status and, once complete, displays the final video to the user for preview and download.",
	},
}

const architectureHeading = "System Architecture Overview"

func renderArchitecture() registry.Block {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", architectureHeading)
	b.WriteString("This architecture is designed for scalability and asynchronous processing, which is crucial for handling time-consuming AI generation tasks without blocking the user interface. ")
	b.WriteString("It decouples the frontend from the heavy-lifting backend workers.\n\n")

	b.WriteString("### Components\n\n")
	for _, c := range architectureComponents {
		fmt.Fprintf(&b, "- **%s:** %s\n", c.Name, c.Tech)
	}

	b.WriteString("\n### AI Pipeline Flow\n\n")
	for i, step := range pipelineFlow {
		marker := ""
		if step.AI {
			marker = " `AI`"
		}
		fmt.Fprintf(&b, "%d. **%s**%s  \n   %s\n", i+1, step.Title, marker, step.Description)
	}

	b.WriteString("\n### Pipeline Diagram\n\n")
	b.WriteString(diagrams.Fenced(pipelineDiagram()))

	return registry.Block{Title: architectureHeading, Markdown: b.String()}
}

// pipelineDiagram draws the flow top to bottom with AI steps highlighted.
func pipelineDiagram() string {
	nodes := make([]diagrams.Node, len(pipelineFlow))
	for i, step := range pipelineFlow {
		nodes[i] = diagrams.Node{Name: step.Title, Highlight: step.AI}
	}
	return diagrams.Flowchart("TD", nodes, diagrams.Chain(nodes))
}
