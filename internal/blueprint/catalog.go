package blueprint

import "github.com/joestump/devguide/internal/project"

var catalog = map[project.Type]Blueprint{
	project.Static: {
		Type:        project.Static,
		Label:       "Static Website",
		Description: "A website with static content, perfect for portfolios, landing pages, or documentation sites",
		Icon:        "globe",
		Structure: Structure{
			Frontend: &Segment{
				Description:         "Static files (HTML, CSS, JavaScript, and assets)",
				Required:            true,
				DefaultTechnologies: []string{"HTML5", "CSS3", "JavaScript"},
			},
			Deployment: &Deployment{
				Description: "Deploy to static hosting platforms",
				Platforms:   []string{"Netlify", "Vercel", "GitHub Pages"},
			},
		},
		DefaultFeatures: []Feature{
			{ID: "responsive", Name: "Responsive Design", Description: "Adapts to different screen sizes", IsDefault: true, Category: Core},
			{ID: "seo", Name: "SEO Optimization", Description: "Basic SEO meta tags and sitemap", IsDefault: true, Category: Core},
		},
		SuggestedFeatures: []Feature{
			{ID: "analytics", Name: "Analytics Integration", Description: "Track user behavior and page views", Category: Optional},
			{ID: "contact", Name: "Contact Form", Description: "Allow visitors to send messages", Category: Optional, Gate: Gate{RequiresBackend: true}},
		},
		RecommendedTechStack: []TechItem{
			{ID: "react", Name: "React", Description: "UI library for building interfaces", Category: TechFrontend, IsDefault: true},
			{ID: "tailwind", Name: "Tailwind CSS", Description: "Utility-first CSS framework", Category: TechFrontend, IsDefault: true},
		},
	},
	project.Fullstack: {
		Type:        project.Fullstack,
		Label:       "Full Stack Application",
		Description: "A complete web application with frontend, backend, and database integration",
		Icon:        "code",
		Structure: Structure{
			Frontend: &Segment{
				Description:         "Client-side application with UI components and state management",
				Required:            true,
				DefaultTechnologies: []string{"React", "TypeScript"},
			},
			Backend: &Segment{
				Description:         "Server-side API and business logic",
				Required:            true,
				DefaultTechnologies: []string{"Node.js", "Express"},
			},
			Database: &Segment{
				Description:         "Data persistence layer",
				Required:            true,
				DefaultTechnologies: []string{"PostgreSQL"},
			},
			Deployment: &Deployment{
				Description: "Separate deployment for frontend and backend",
				Platforms:   []string{"Vercel", "Railway", "Heroku"},
			},
		},
		DefaultFeatures: []Feature{
			{ID: "auth", Name: "User Authentication", Description: "User registration and login system", IsDefault: true, Category: Core, Gate: Gate{RequiresBackend: true}},
			{ID: "crud", Name: "CRUD Operations", Description: "Create, read, update, and delete data", IsDefault: true, Category: Core, Gate: Gate{RequiresBackend: true, RequiresDatabase: true}},
		},
		SuggestedFeatures: []Feature{
			{ID: "roles", Name: "Role-based Access", Description: "Different permission levels for users", Category: Optional, Gate: Gate{RequiresBackend: true}},
			{ID: "realtime", Name: "Real-time Updates", Description: "Live data synchronization", Category: Advanced, Gate: Gate{RequiresBackend: true}},
		},
		RecommendedTechStack: []TechItem{
			{ID: "nextjs", Name: "Next.js", Description: "React framework with SSR support", Category: TechFrontend, IsDefault: true},
			{ID: "prisma", Name: "Prisma", Description: "Type-safe database ORM", Category: TechBackend, IsDefault: true, Gate: Gate{RequiresDatabase: true}},
		},
	},
	project.Backend: {
		Type:        project.Backend,
		Label:       "Backend Service",
		Description: "API or service focused on server-side operations",
		Icon:        "server",
		Structure: Structure{
			Backend: &Segment{
				Description:         "Server application with API endpoints and business logic",
				Required:            true,
				DefaultTechnologies: []string{"Node.js", "Express", "TypeScript"},
			},
			Database: &Segment{
				Description:         "Data storage and management",
				Required:            true,
				DefaultTechnologies: []string{"PostgreSQL", "Redis"},
			},
			Deployment: &Deployment{
				Description: "Deploy to cloud platforms",
				Platforms:   []string{"AWS", "Google Cloud", "DigitalOcean"},
			},
		},
		DefaultFeatures: []Feature{
			{ID: "api", Name: "RESTful API", Description: "Standard REST API endpoints", IsDefault: true, Category: Core},
			{ID: "auth", Name: "API Authentication", Description: "Secure API endpoints", IsDefault: true, Category: Core},
		},
		SuggestedFeatures: []Feature{
			{ID: "caching", Name: "Response Caching", Description: "Cache frequently accessed data", Category: Optional},
			{ID: "queue", Name: "Job Queue", Description: "Background task processing", Category: Advanced},
		},
		RecommendedTechStack: []TechItem{
			{ID: "nestjs", Name: "NestJS", Description: "Progressive Node.js framework", Category: TechBackend, IsDefault: true},
			{ID: "swagger", Name: "Swagger/OpenAPI", Description: "API documentation", Category: TechBackend, IsDefault: true},
		},
	},
	project.Mobile: {
		Type:        project.Mobile,
		Label:       "Mobile Application",
		Description: "Native or hybrid mobile application",
		Icon:        "smartphone",
		Structure: Structure{
			Frontend: &Segment{
				Description:         "Mobile UI components and navigation",
				Required:            true,
				DefaultTechnologies: []string{"React Native", "TypeScript"},
			},
			Backend: &Segment{
				Description:         "Backend API for mobile app",
				Required:            false,
				DefaultTechnologies: []string{"Node.js", "Express"},
			},
			Database: &Segment{
				Description:         "Data persistence",
				Required:            false,
				DefaultTechnologies: []string{"SQLite", "Realm"},
			},
			Deployment: &Deployment{
				Description: "Deploy to app stores",
				Platforms:   []string{"App Store", "Google Play"},
			},
		},
		DefaultFeatures: []Feature{
			{ID: "offline", Name: "Offline Support", Description: "Work without internet connection", IsDefault: true, Category: Core},
			{ID: "push", Name: "Push Notifications", Description: "Send notifications to users", IsDefault: true, Category: Core, Gate: Gate{RequiresBackend: true}},
		},
		SuggestedFeatures: []Feature{
			{ID: "location", Name: "Location Services", Description: "GPS and mapping features", Category: Optional},
			{ID: "camera", Name: "Camera Integration", Description: "Access device camera", Category: Optional},
		},
		RecommendedTechStack: []TechItem{
			{ID: "expo", Name: "Expo", Description: "React Native development platform", Category: TechFrontend, IsDefault: true},
			{ID: "firebase", Name: "Firebase", Description: "Backend as a Service", Category: TechBackend, IsDefault: true},
		},
	},
}
