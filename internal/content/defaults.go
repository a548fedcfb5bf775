package content

const githubProfile = "https://github.com/Changomango0903"

// Default returns the built-in site content. Each call builds a fresh value
// so callers can never share slices with each other.
func Default() *Site {
	return &Site{
		Name:        "Changomango Portfolio",
		Description: "Computer Science Student & Aspiring Software Engineer passionate about AI/ML and building innovative solutions.",
		URL:         "https://changomango-portfolio.vercel.app",
		Keywords: []string{
			"portfolio", "computer science", "software engineer", "ai engineer",
			"machine learning", "python", "typescript", "go", "student developer",
		},
		OGImage: "/static/og-image.png",
		Author: Author{
			Name:     "Changomango",
			Email:    "changomango@example.com",
			URL:      "https://changomango-portfolio.vercel.app",
			Twitter:  "@changomango",
			GitHub:   githubProfile,
			LinkedIn: "https://linkedin.com/in/changomango",
		},
		Navigation: []NavItem{
			{Title: "Home", Href: "/"},
			{Title: "Projects", Href: "/projects"},
			{Title: "About", Href: "/about"},
			{Title: "Contact", Href: "/contact"},
		},
		Social: Social{
			GitHub:   githubProfile,
			LinkedIn: "https://linkedin.com/in/changomango",
			Twitter:  "https://twitter.com/changomango",
			Email:    "mailto:changomango@example.com",
		},
		Categories: []Category{
			{
				ID:          "ml",
				Name:        "Machine Learning & AI",
				Description: "Deep learning models, computer vision, NLP, and AI-powered applications that solve real-world problems.",
				Icon:        "🧠",
				Slug:        "machine-learning",
				Filters:     []string{"Python", "PyTorch", "TensorFlow", "OpenCV", "AWS", "CUDA"},
			},
			{
				ID:          "software",
				Name:        "Software Engineering",
				Description: "Full-stack applications, system design, and scalable software solutions with clean architecture.",
				Icon:        "💻",
				Slug:        "software-engineering",
				Filters:     []string{"React", "Node.js", "TypeScript", "PostgreSQL", "Docker", "AWS"},
			},
			{
				ID:          "fintech",
				Name:        "Fintech & Data",
				Description: "Financial modeling, algorithmic trading, risk analysis, and data-driven investment strategies.",
				Icon:        "💰",
				Slug:        "fintech",
				Filters:     []string{"Python", "Pandas", "NumPy", "PostgreSQL", "Redis", "WebSocket"},
			},
			{
				ID:          "research",
				Name:        "Research & Analysis",
				Description: "Academic research projects, data analysis, and experimental implementations of cutting-edge algorithms.",
				Icon:        "🔬",
				Slug:        "research",
				Filters:     []string{"Python", "R", "Jupyter", "Matplotlib", "Seaborn", "LaTeX"},
			},
		},
		Skills: []SkillCategory{
			{Name: "Programming Languages", Skills: []string{"Python", "JavaScript", "TypeScript", "Java", "C++", "Go"}},
			{Name: "Frameworks & Libraries", Skills: []string{"React", "Next.js", "Node.js", "Express", "Django"}},
			{Name: "Tools & Platforms", Skills: []string{"Git", "Docker", "AWS", "Vercel", "Linux", "VS Code"}},
			{Name: "Areas of Interest", Skills: []string{"Machine Learning", "Web Development", "Data Structures", "Algorithms"}},
		},
		Contact: Contact{
			Email:        "changomango@example.com",
			Location:     "Your City, Country",
			Timezone:     "UTC",
			Availability: "Available for internships and entry-level positions",
		},
		Features: Features{
			DarkMode:    true,
			ContactForm: true,
			Analytics:   true,
		},
		About:    []string{AboutIntro, AboutWork, AboutNow},
		Projects: defaultProjects(),
	}
}

func defaultProjects() []Project {
	return []Project{
		{
			ID:          "1",
			Title:       "Neural Style Transfer",
			Description: "A deep learning application that transfers artistic styles between images using convolutional neural networks. Implemented custom loss functions and optimization techniques for high-quality results.",
			Category:    "ml",
			Featured:    true,
			TechStack:   []string{"Python", "PyTorch", "OpenCV", "FastAPI"},
			Links: Links{
				GitHub: githubProfile + "/neural-style-transfer",
				Demo:   "https://demo.example.com",
				Paper:  "https://arxiv.org/abs/example",
			},
			Image:  "/images/projects/neural-style.jpg",
			Status: StatusCompleted,
			Metrics: []Metric{
				{Label: "Style Accuracy", Value: "95%"},
				{Label: "Processing Time", Value: "2.3s"},
				{Label: "Max Resolution", Value: "512px"},
			},
			Date: "2024-03-15",
		},
		{
			ID:          "2",
			Title:       "Sentiment Analysis API",
			Description: "REST API for real-time sentiment analysis using BERT transformers. Handles 1000+ requests/second with 94% accuracy on social media text.",
			Category:    "ml",
			TechStack:   []string{"Python", "TensorFlow", "BERT", "Docker"},
			Links: Links{
				GitHub: githubProfile + "/sentiment-api",
				Docs:   "https://api-docs.example.com",
			},
			Image:  "/images/projects/sentiment-api.jpg",
			Status: StatusCompleted,
			Date:   "2024-02-20",
		},
		{
			ID:          "3",
			Title:       "Real-time Object Detection",
			Description: "Custom YOLO implementation for detecting objects in live video streams. Optimized for edge devices with 30+ FPS performance.",
			Category:    "ml",
			TechStack:   []string{"Python", "PyTorch", "OpenCV", "CUDA"},
			Links: Links{
				GitHub: githubProfile + "/object-detection",
				Demo:   "https://demo-video.example.com",
			},
			Image:  "/images/projects/object-detection.jpg",
			Status: StatusInProgress,
			Date:   "2024-01-10",
		},
		{
			ID:          "4",
			Title:       "Full-stack E-commerce Platform",
			Description: "Modern e-commerce solution with microservices architecture, real-time inventory, and advanced analytics dashboard.",
			Category:    "software",
			Featured:    true,
			TechStack:   []string{"Next.js", "TypeScript", "PostgreSQL", "Redis", "Docker"},
			Links: Links{
				GitHub: githubProfile + "/ecommerce-platform",
				Demo:   "https://shop.example.com",
			},
			Image:  "/images/projects/ecommerce.jpg",
			Status: StatusCompleted,
			Date:   "2024-04-05",
		},
		{
			ID:          "5",
			Title:       "Portfolio Optimization Tool",
			Description: "Algorithmic trading platform with portfolio optimization and risk analysis using modern portfolio theory.",
			Category:    "fintech",
			Featured:    true,
			TechStack:   []string{"Python", "Pandas", "NumPy", "Plotly", "FastAPI"},
			Links: Links{
				GitHub: githubProfile + "/portfolio-optimizer",
			},
			Image:  "/images/projects/portfolio-optimizer.jpg",
			Status: StatusInProgress,
			Date:   "2024-03-01",
		},
		{
			ID:          "6",
			Title:       "Crypto Trading Bot",
			Description: "Automated cryptocurrency trading bot with machine learning prediction models and risk management.",
			Category:    "fintech",
			TechStack:   []string{"Python", "Pandas", "scikit-learn", "WebSocket", "Redis"},
			Links: Links{
				GitHub: githubProfile + "/crypto-bot",
			},
			Image:  "/images/projects/crypto-bot.jpg",
			Status: StatusResearch,
			Date:   "2024-01-20",
		},
	}
}
