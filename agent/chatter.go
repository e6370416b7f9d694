package agent

import "fmt"

// teamMessage returns the opening line the sender says to another agent
// while working on a task, or "" when the pair has nothing to discuss.
// Category pairings are checked before role pairings, so an agent whose
// category already matches never reaches its role-specific line.
func teamMessage(from, to *Agent) string {
	switch {
	case from.Category == CategoryCoder && to.Category == CategoryAnalyst:
		return fmt.Sprintf("Hey %s, I'm working on the website code. Do you have any data analysis results that should be integrated into the design?", to.Name)
	case from.Category == CategoryAnalyst && to.Category == CategoryCoder:
		return fmt.Sprintf("Hi %s, I'm analyzing the data. What kind of visualizations would work best for the website?", to.Name)
	case from.Category == CategoryImage && to.Category == CategoryText:
		return fmt.Sprintf("Hello %s, I'm preparing image prompts. What content themes should I focus on for the visuals?", to.Name)
	case from.Category == CategoryText && to.Category == CategoryImage:
		return fmt.Sprintf("Hi %s, I'm writing content. What image styles would complement the articles best?", to.Name)
	case from.Category == CategoryCoordinator && to.Category != CategoryCoordinator:
		return fmt.Sprintf("Hello %s, I'm coordinating the project. How is your part of the task progressing?", to.Name)
	case to.Category == CategoryCoordinator && from.Category != CategoryCoordinator:
		return fmt.Sprintf("Hi %s, I'm working on my assigned task. Do you have any specific requirements or feedback?", to.Name)
	case from.Role == RoleWebDeveloper && to.Role == RoleUXUIDesigner:
		return fmt.Sprintf("Hey %s, I'm building the website structure. What design elements should I prioritize for the layout?", to.Name)
	case from.Role == RoleUXUIDesigner && to.Role == RoleWebDeveloper:
		return fmt.Sprintf("Hi %s, I'm designing the user interface. What technical constraints should I consider for the implementation?", to.Name)
	case from.Role == RoleCopywriter && to.Role == RoleGraphicDesigner:
		return fmt.Sprintf("Hello %s, I'm writing the website content. What visual themes would work best with the text I'm creating?", to.Name)
	case from.Role == RoleGraphicDesigner && to.Role == RoleCopywriter:
		return fmt.Sprintf("Hi %s, I'm creating graphics. What content themes should I focus on for the visual elements?", to.Name)
	case from.Role == RoleProjectManager:
		return fmt.Sprintf("Hello %s, I'm managing the project timeline. How is your task progressing and do you need any resources?", to.Name)
	case from.Role == RoleMarketingStrategist && (to.Role == RoleCopywriter || to.Role == RoleGraphicDesigner):
		return fmt.Sprintf("Hey %s, I'm planning the marketing campaign. What content or visuals would work best for our target audience?", to.Name)
	case from.Role == RoleDataAnalyst && (to.Role == RoleWebDeveloper || to.Role == RoleUXUIDesigner):
		return fmt.Sprintf("Hi %s, I'm analyzing user data. What insights would be most valuable for improving the website design?", to.Name)
	case from.Role == RoleIntegrator:
		return fmt.Sprintf("Hello %s, I'm coordinating the final integration. How is your component coming along and what should I know for the final assembly?", to.Name)
	case from.Role == RoleDevOps && to.Role == RoleWebDeveloper:
		return fmt.Sprintf("Hey %s, I'm setting up the hosting environment. What technical requirements should I prepare for deployment?", to.Name)
	case from.Role == RoleMobileTesting:
		return fmt.Sprintf("Hi %s, I'm testing the mobile responsiveness. Are there any specific features or sections I should pay extra attention to?", to.Name)
	case from.Role == RoleFeedbackQA:
		return fmt.Sprintf("Hello %s, I'm conducting quality assurance. What aspects of your work should I focus on during testing?", to.Name)
	case from.Role == RoleChatbot:
		return fmt.Sprintf("Hi %s, I'm preparing the chatbot responses. What information should I have ready for visitor questions?", to.Name)
	case from.Role == RoleClientAdvisor:
		return fmt.Sprintf("Hello %s, I'm gathering client requirements. What specific needs should I communicate to the team?", to.Name)
	}
	return ""
}

// responseMessage returns the reply the responder sends back to the
// agent that opened the exchange, or "" when there is none.
func responseMessage(from, to *Agent) string {
	switch {
	case from.Category == CategoryAnalyst && to.Category == CategoryCoder:
		return fmt.Sprintf("Thanks %s! I have some key insights that would work well as interactive charts on the website.", to.Name)
	case from.Category == CategoryCoder && to.Category == CategoryAnalyst:
		return fmt.Sprintf("Perfect %s! I'll make sure the website can display your data analysis results effectively.", to.Name)
	case from.Category == CategoryText && to.Category == CategoryImage:
		return fmt.Sprintf("Great %s! I'm writing about the project content right now. Matching imagery would be perfect!", to.Name)
	case from.Category == CategoryImage && to.Category == CategoryText:
		return fmt.Sprintf("Excellent %s! I'll focus on imagery that matches your content.", to.Name)
	case from.Category == CategoryCoordinator && to.Category != CategoryCoordinator:
		return fmt.Sprintf("Good progress %s! Keep me updated on any challenges or if you need additional resources.", to.Name)
	case to.Category == CategoryCoordinator && from.Category != CategoryCoordinator:
		return fmt.Sprintf("Thanks %s! I'm making good progress and will let you know if I encounter any issues.", to.Name)
	case from.Role == RoleWebDeveloper && to.Role == RoleUXUIDesigner:
		return fmt.Sprintf("Perfect %s! I'll implement the design with clean, semantic HTML and responsive CSS. Any specific animations or interactions you'd like me to focus on?", to.Name)
	case from.Role == RoleUXUIDesigner && to.Role == RoleWebDeveloper:
		return fmt.Sprintf("Thanks %s! I'm designing with mobile-first approach and accessibility in mind. The layout will be flexible for your implementation.", to.Name)
	case from.Role == RoleCopywriter && to.Role == RoleGraphicDesigner:
		return fmt.Sprintf("Great %s! I'm writing engaging content for the site. High-quality imagery would complement the text perfectly.", to.Name)
	case from.Role == RoleGraphicDesigner && to.Role == RoleCopywriter:
		return fmt.Sprintf("Excellent %s! I'll create imagery that matches your engaging content.", to.Name)
	case from.Role == RoleProjectManager:
		return fmt.Sprintf("Thanks %s! I'm on track with the timeline. Let me know if you need any adjustments to the schedule or additional resources.", to.Name)
	case from.Role == RoleMarketingStrategist:
		return fmt.Sprintf("Perfect %s! I'm planning campaigns that will showcase your work effectively. The content and visuals will be optimized for our target audience.", to.Name)
	case from.Role == RoleDataAnalyst:
		return fmt.Sprintf("Great %s! I'm analyzing user behavior patterns that will help optimize the design and user experience.", to.Name)
	case from.Role == RoleIntegrator:
		return fmt.Sprintf("Excellent %s! I'm ready to integrate your component into the final product. Everything looks good for the final assembly.", to.Name)
	case from.Role == RoleDevOps:
		return fmt.Sprintf("Perfect %s! I'm preparing the deployment environment. The hosting setup will be optimized for your code requirements.", to.Name)
	case from.Role == RoleMobileTesting:
		return fmt.Sprintf("Thanks %s! I'm testing across all devices and will ensure everything works perfectly on mobile, tablet, and desktop.", to.Name)
	case from.Role == RoleFeedbackQA:
		return fmt.Sprintf("Great %s! I'm conducting thorough testing and will provide detailed feedback to ensure the highest quality.", to.Name)
	case from.Role == RoleChatbot:
		return fmt.Sprintf("Perfect %s! I'm preparing helpful responses for visitor questions about the site and its features.", to.Name)
	case from.Role == RoleClientAdvisor:
		return fmt.Sprintf("Excellent %s! I'm gathering all the client requirements and will ensure the final product meets their expectations perfectly.", to.Name)
	}
	return ""
}
