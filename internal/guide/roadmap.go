package guide

import (
	"fmt"
	"strings"

	"github.com/storyflow/techguide/internal/registry"
)

type roadmapPhase struct {
	Phase int
	Weeks string
	Title string
	Theme string
	Tasks []string
}

var roadmapPhases = []roadmapPhase{
	{
		Phase: 1,
		Weeks: "1-3",
		Title: "Core Infrastructure & Authentication",
		Theme: "Build a solid foundation for the application, including backend services, database, and user management.",
		Tasks: []string{
			"Set up Fastify backend project with TypeScript.",
			"Initialize PostgreSQL database and configure Prisma ORM.",
			"Implement JWT-based user registration and login endpoints.",
			"Set up BullMQ with Redis for background job processing.",
			"Deploy initial backend infrastructure to Railway or Render.",
			"Create basic Next.js frontend with user auth flow.",
		},
	},
	{
		Phase: 2,
		Weeks: "4-6",
		Title: "Script Analysis & Image Generation",
		Theme: "Implement the first stages of the AI pipeline, from script input to visual asset creation.",
		Tasks: []string{
			"Create API endpoint to accept a script and create a video project.",
			"Implement a BullMQ worker for script analysis using GPT-4o-mini.",
			"Develop logic to parse AI response and create scene records in the database.",
			"Implement a second worker to generate scene images using DALL-E 3.",
			"Integrate AWS S3 for storing generated images.",
			"Build frontend UI for script submission and to display generated scene images.",
		},
	},
	{
		Phase: 3,
		Weeks: "7-9",
		Title: "Audio & Video Assembly",
		Theme: "Complete the asset generation pipeline and integrate the core video creation service.",
		Tasks: []string{
			"Implement a worker for text-to-speech using the ElevenLabs API.",
			"Save generated audio files to S3.",
			"Integrate the Replicate API for video processing (image + audio -> video clip).",
			"Chain jobs together: image/audio generation must complete before video assembly.",
			"Implement final FFmpeg job to stitch scene clips and add background music.",
			"Develop frontend components to manage voice and music selection.",
		},
	},
	{
		Phase: 4,
		Weeks: "10-12",
		Title: "Frontend Polish, Tracking & Testing",
		Theme: "Build the user-facing interface for managing video creation and prepare for launch.",
		Tasks: []string{
			"Develop a dashboard to display user's video projects and their statuses.",
			"Implement real-time progress updates on the frontend (e.g., using WebSockets or polling).",
			"Build the final video preview player and download functionality.",
			"Implement credit system and link to user accounts.",
			"Conduct end-to-end testing of the entire pipeline.",
			"Set up monitoring with Sentry and LogTail.",
		},
	},
}

const roadmapHeading = "12-Week MVP Implementation Roadmap"

func renderRoadmap() registry.Block {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", roadmapHeading)
	b.WriteString("This agile roadmap is broken into four 3-week phases, focusing on building a robust, end-to-end system. ")
	b.WriteString("Each phase delivers a key part of the overall functionality, culminating in a launch-ready MVP.\n")

	for _, p := range roadmapPhases {
		fmt.Fprintf(&b, "\n### Phase %d (Weeks %s): %s\n\n", p.Phase, p.Weeks, p.Title)
		fmt.Fprintf(&b, "*%s*\n\n", p.Theme)
		for _, task := range p.Tasks {
			fmt.Fprintf(&b, "- %s\n", task)
		}
	}

	return registry.Block{Title: roadmapHeading, Markdown: b.String()}
}
