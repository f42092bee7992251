package phase

import "github.com/joestump/devguide/internal/project"

var allTypes = []project.Type{project.Static, project.Fullstack, project.Backend, project.Mobile}

// StoryPhases returns the story-driven development phases. Their templates
// reference [SELECTED_STORY] and [ACCEPTANCE_CRITERIA].
func StoryPhases() []Phase {
	return withIDs(storyPhases)
}

var storyPhases = []Phase{
	{
		Title:       "Project Definition",
		Description: "Define the core aspects and architecture of your project",
		Prompt: `Project Type: [PROJECT_TYPE]

Project Name: [PROJECT_NAME]
Description: [PROJECT_DESCRIPTION]

Core Features:
[FEATURES]

Tech Stack:
[TECH_STACK]

Please help me:
1. Define the project architecture
2. Set up the initial project structure
3. Configure the development environment
4. Outline the development phases
5. Identify potential technical challenges

Focus on creating a solid foundation for development while considering scalability and maintainability.`,
		ApplicableTo: allTypes,
	},
	{
		Title:       "UI Implementation",
		Description: "Design and implement the user interface components",
		Prompt: `Implement the UI components for the following user story:

[SELECTED_STORY]

Acceptance Criteria:
[ACCEPTANCE_CRITERIA]

Technical Requirements:
- Project Type: [PROJECT_TYPE]
- Tech Stack: [TECH_STACK]

Please provide:
1. Component structure
2. UI implementation details
3. State management approach
4. Required styling
5. Any necessary validations`,
		ApplicableTo: []project.Type{project.Static, project.Fullstack, project.Mobile},
	},
	{
		Title:       "Backend Implementation",
		Description: "Implement the server-side functionality",
		Prompt: `Implement the backend functionality for the following user story:

[SELECTED_STORY]

Acceptance Criteria:
[ACCEPTANCE_CRITERIA]

Technical Context:
- Project Type: [PROJECT_TYPE]
- Tech Stack: [TECH_STACK]

Please provide:
1. API endpoint design
2. Data model updates
3. Business logic implementation
4. Error handling
5. Security considerations`,
		RequiresBackend: true,
	},
	{
		Title:       "Database Design",
		Description: "Design and implement the database schema and operations",
		Prompt: `Design the database schema and operations for:

[SELECTED_STORY]

Project Context:
- Project Type: [PROJECT_TYPE]
- Tech Stack: [TECH_STACK]

Please provide:
1. Database schema design
2. Table relationships
3. Required indexes
4. Data access patterns
5. Migration strategy`,
		RequiresBackend: true,
	},
	{
		Title:       "Testing",
		Description: "Create comprehensive tests for the implementation",
		Prompt: `Create tests for the following user story:

[SELECTED_STORY]

Acceptance Criteria:
[ACCEPTANCE_CRITERIA]

Project Context:
- Project Type: [PROJECT_TYPE]
- Tech Stack: [TECH_STACK]

Please provide:
1. Unit tests
2. Integration tests
3. UI tests (if applicable)
4. Test data setup
5. Edge cases to consider`,
		ApplicableTo: allTypes,
	},
	{
		Title:       "Deployment",
		Description: "Set up deployment and hosting configuration",
		Prompt: `Create deployment configuration for:

Project Type: [PROJECT_TYPE]
Tech Stack: [TECH_STACK]

Features to deploy:
[FEATURES]

Please provide:
1. Environment configuration
2. Build process setup
3. Deployment pipeline
4. Monitoring setup
5. Backup strategy`,
		ApplicableTo: allTypes,
	},
}
