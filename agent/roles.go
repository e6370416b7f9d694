package agent

import "fmt"

// Role identifies an agent's position in the office. The set is closed:
// the pipeline addresses stages by role, so an unknown role can never
// receive pipeline work.
type Role string

const (
	RoleWebDeveloper        Role = "Web Developer"
	RoleUXUIDesigner        Role = "UX/UI Designer"
	RoleCopywriter          Role = "Copywriter"
	RoleMarketingStrategist Role = "Marketing Strategist"
	RoleDataAnalyst         Role = "Data Analyst"
	RoleChatbot             Role = "AI Chatbot"
	RoleGraphicDesigner     Role = "AI Graphic Designer"
	RoleDevOps              Role = "Hosting/DevOps"
	RoleProjectManager      Role = "Project Manager"
	RoleClientAdvisor       Role = "Client Advisor"
	RoleIntegrator          Role = "Integrator (Coordinator)"
	RoleMobileTesting       Role = "Mobile Responsiveness & Testing Agent"
	RoleFeedbackQA          Role = "Feedback & QA Agent"
)

// Roles lists every known role.
var Roles = []Role{
	RoleWebDeveloper,
	RoleUXUIDesigner,
	RoleCopywriter,
	RoleMarketingStrategist,
	RoleDataAnalyst,
	RoleChatbot,
	RoleGraphicDesigner,
	RoleDevOps,
	RoleProjectManager,
	RoleClientAdvisor,
	RoleIntegrator,
	RoleMobileTesting,
	RoleFeedbackQA,
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// RoleNotFoundError is returned when a pipeline stage addresses a role
// that has no agent in the roster.
type RoleNotFoundError struct {
	Role Role
}

func (e *RoleNotFoundError) Error() string {
	return fmt.Sprintf("no agent with role %q", e.Role)
}

// roleInstructions maps each role to the task-specific instruction
// appended to the generation prompt. Roles without an entry get a
// generic professional-agent instruction.
var roleInstructions = map[Role]string{
	RoleClientAdvisor: "Your job is to collect all requirements from the client, detect ambiguities, ask follow-up questions, define KPIs, target group, and project scope.\n" +
		"Format your answer as a project brief with: goal, detected ambiguities, follow-up questions, target group, KPIs, scope.\n",
	RoleProjectManager: "Create a detailed project schedule (with dates), split tasks for each agent, monitor risks, and check compliance with the brief.\n" +
		"Format: schedule, task split, risk monitoring.\n",
	RoleWebDeveloper: "Generate responsive code (HTML, CSS, JS, React if needed), optimize for Core Web Vitals, handle dynamic data (API, CMS), and use version control (Git).\n" +
		"Format: code block, comments, and summary of optimizations.\n",
	RoleUXUIDesigner: "Design a modern, accessible UI. Create a design system, layout, mockups, test user flows, and export to Figma/Tailwind.\n" +
		"Format: design description, accessibility checklist, user flow, export notes.\n",
	RoleCopywriter: "Write SEO-optimized website texts, product descriptions, blog posts, headlines, meta tags, OpenGraph, and internal linking. Analyze competitors.\n" +
		"Format: homepage headline, blog title, product description, CTA, meta, competitor analysis, internal links.\n",
	RoleGraphicDesigner: "You are an expert AI graphic designer. For each required asset (logo, hero image, icons, banners, mockups):\n" +
		"- Propose at least 3 unique prompts for an image model.\n" +
		"- For each prompt, specify intended use, style (e.g. flat, 3D, photorealistic), color palette, and platform (web, mobile, social).\n" +
		"- Suggest optimization (WebP, AVIF, compression).\n" +
		"- Output as markdown table: Asset | Prompt | Style | Platform | Optimization\n",
	RoleMobileTesting: "Test the website on mobile, tablet, desktop. Run automated tests (Playwright, Cypress, Lighthouse), check PWA compliance and App Manifest.\n" +
		"Format: test report, issues found, compliance checklist.\n",
	RoleFeedbackQA: "Run regression tests, collect client and visitor feedback, generate pre-launch checklist, and archive the repository.\n" +
		"Format: test results, feedback summary, checklist, archiving note.\n",
	RoleMarketingStrategist: "Plan and monitor marketing campaigns (Google Ads, Meta, LinkedIn), segment customers, propose lead magnets and funnels, schedule campaigns, and budget.\n" +
		"Format: campaign plan, segmentation, lead magnets, funnel, schedule, budget.\n",
	RoleChatbot: "Create conversation scenarios (FAQ, support), integrate with CRM, handle forms, remember context, and track sessions.\n" +
		"Format: scenario list, CRM integration, context memory, session tracking.\n",
	RoleDataAnalyst: "Connect to analytics tools (GA4, Facebook Pixel, Matomo), create dashboards, analyze UX (heatmaps, scroll depth), and generate daily/monthly reports.\n" +
		"Format: analytics summary, dashboard links (if possible), UX analysis, recommendations.\n",
	RoleDevOps: "Choose hosting (Vercel, Netlify, AWS), set up CI/CD (GitHub Actions), configure domain, SSL, cache, backups, and monitor uptime/load time.\n" +
		"Format: deployment steps, configuration summary, monitoring report.\n",
}

// Instruction returns the role-specific instruction text for the prompt.
func (r Role) Instruction() string {
	if instr, ok := roleInstructions[r]; ok {
		return instr
	}
	return "Respond as a professional agent.\n"
}
