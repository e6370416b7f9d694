package config

import "time"

// Default returns the stock configuration: local Ollama, standard
// pacing, and the full thirteen-agent roster.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8080",
			Auth: AuthConfig{
				AdminUser: "admin",
				TokenTTL:  Duration(24 * time.Hour),
			},
		},
		Provider: ProviderConfig{
			Kind:    "ollama",
			BaseURL: "http://localhost:11434",
			Model:   "qwen3:0.6b",
			Timeout: Duration(60 * time.Second),
		},
		Simulation: SimulationConfig{
			WorkDelay: Duration(2 * time.Second),
			ChatDelay: Duration(500 * time.Millisecond),
		},
		Storage: StorageConfig{
			StateFile:   "office_state.json",
			ArchivePath: "office_archive.db",
		},
		Agents: defaultRoster(),
	}
}

func defaultRoster() []AgentConfig {
	return []AgentConfig{
		{
			ID: "web_dev1", Name: "Alex Carter", Role: "Web Developer", Category: "coder",
			Skills:        []string{"HTML", "CSS", "JavaScript", "React", "Vue.js", "Next.js", "responsive layouts", "prototyping"},
			Traits:        []string{"precise", "innovative"},
			Tools:         []string{"AI code assistant", "low-code", "no-code"},
			Collaborators: []string{"ux_ui1", "copywriter1"},
		},
		{
			ID: "ux_ui1", Name: "Taylor Kim", Role: "UX/UI Designer", Category: "image",
			Skills:        []string{"wireframing", "UI design", "user flow", "color theory", "mockups"},
			Traits:        []string{"creative", "empathetic"},
			Tools:         []string{"Figma AI", "Galileo AI"},
			Collaborators: []string{"web_dev1", "copywriter1"},
		},
		{
			ID: "copywriter1", Name: "Morgan Lee", Role: "Copywriter", Category: "text",
			Skills:        []string{"SEO writing", "blog articles", "product descriptions", "headlines", "CTA"},
			Traits:        []string{"communicative", "persuasive"},
			Tools:         []string{"ChatGPT", "Jasper", "Copy.ai"},
			Collaborators: []string{"marketing1", "ux_ui1"},
		},
		{
			ID: "marketing1", Name: "Jordan Smith", Role: "Marketing Strategist", Category: "coordinator",
			Skills:        []string{"campaign planning", "SEO/SEM", "social media", "content strategy", "targeting"},
			Traits:        []string{"strategic", "dynamic"},
			Tools:         []string{"HubSpot AI"},
			Collaborators: []string{"copywriter1", "data_analyst1"},
		},
		{
			ID: "data_analyst1", Name: "Casey Brown", Role: "Data Analyst", Category: "analyst",
			Skills:        []string{"user data analysis", "traffic analysis", "ROI", "KPI dashboards", "Power BI", "Python", "Pandas"},
			Traits:        []string{"analytical", "detail-oriented"},
			Tools:         []string{"Power BI Copilot", "Python", "AI dashboards"},
			Collaborators: []string{"marketing1", "pm1"},
		},
		{
			ID: "chatbot1", Name: "RoboAssist", Role: "AI Chatbot", Category: "text",
			Skills:        []string{"customer support", "FAQ", "offer presentation", "lead generation"},
			Traits:        []string{"helpful", "responsive"},
			Tools:         []string{"ChatGPT", "Rasa", "Botpress"},
			Collaborators: []string{"web_dev1"},
		},
		{
			ID: "graphic1", Name: "Samira Patel", Role: "AI Graphic Designer", Category: "image",
			Skills:        []string{"social media graphics", "banners", "mockups", "logos", "ad creatives"},
			Traits:        []string{"visual", "imaginative"},
			Tools:         []string{"DALL-E", "Midjourney", "Canva AI"},
			Collaborators: []string{"ux_ui1", "marketing1"},
		},
		{
			ID: "devops1", Name: "Chris Nguyen", Role: "Hosting/DevOps", Category: "coder",
			Skills:        []string{"hosting setup", "CI/CD", "security", "backups", "cloud platforms"},
			Traits:        []string{"reliable", "systematic"},
			Tools:         []string{"GitHub Copilot", "Ansible AI", "Vercel AI"},
			Collaborators: []string{"pm1"},
		},
		{
			ID: "pm1", Name: "Jamie Evans", Role: "Project Manager", Category: "coordinator",
			Skills:        []string{"project management", "task assignment", "progress tracking", "prioritization"},
			Traits:        []string{"organized", "leadership"},
			Tools:         []string{"Notion AI", "Asana AI"},
			Collaborators: []string{"client1", "devops1", "data_analyst1"},
		},
		{
			ID: "client1", Name: "Avery Green", Role: "Client Advisor", Category: "text",
			Skills:        []string{"client consulting", "requirements gathering", "offer creation", "briefing"},
			Traits:        []string{"advisory", "insightful"},
			Tools:         []string{"dynamic forms"},
			Collaborators: []string{"pm1"},
		},
		{
			ID: "integrator1", Name: "Pat Morgan", Role: "Integrator (Coordinator)", Category: "coordinator",
			Skills:        []string{"coordination", "quality control", "final reporting", "team management"},
			Traits:        []string{"coordinative", "meticulous"},
			Collaborators: []string{"pm1", "marketing1", "web_dev1", "ux_ui1", "copywriter1", "graphic1", "devops1", "data_analyst1", "chatbot1", "client1"},
		},
		{
			ID: "mobile1", Name: "Riley Fox", Role: "Mobile Responsiveness & Testing Agent", Category: "coder",
			Skills:        []string{"mobile views", "tablet views", "desktop views", "automated testing", "PWA", "App Manifest"},
			Traits:        []string{"thorough", "tech-savvy"},
			Tools:         []string{"Playwright", "Cypress", "Lighthouse"},
			Collaborators: []string{"web_dev1", "ux_ui1"},
		},
		{
			ID: "feedback1", Name: "Dana White", Role: "Feedback & QA Agent", Category: "coordinator",
			Skills:        []string{"regression testing", "feedback collection", "checklists", "repo archiving"},
			Traits:        []string{"meticulous", "user-focused"},
			Tools:         []string{"Percy.io", "Notion AI", "custom forms"},
			Collaborators: []string{"pm1", "client1"},
		},
	}
}
