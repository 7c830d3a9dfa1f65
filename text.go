package main

import "html/template"

type Link struct {
	Label    string
	Href     string
	External bool
	Primary  bool
}

type Education struct {
	Degree      string
	Institution string
	Location    string
	Grade       string
	Period      string
	Coursework  []string
}

// SkillCategory is one card of the skills grid. Business marks the
// business-analysis half of the grid.
type SkillCategory struct {
	Title    string
	Business bool
	Skills   []string
}

type Project struct {
	Title       string
	Emoji       string
	Description string
	TechStack   []string
	Highlights  []string
	KPIs        []string
	Repo        string
}

type Certification struct {
	Title       string
	Issuer      string
	Date        string
	Completed   bool
	Description string
	Skills      []string
	URL         string
}

// Href is trusted so tel: links survive template escaping.
type ContactCard struct {
	Label string
	Value string
	Href  template.URL
}

var (
	Name     = "Sunil Kumar Reddy"
	Headline = "Turning Data into Business Impact"
	Tagline  = `Fresher Data Analyst & Business Analyst | Driven to deliver value through data storytelling
	and business insight.`
	Role = "Data Analyst & Business Analyst"

	AboutMe = []string{
		`I'm Sunil Kumar Reddy, a certified Data Analyst based in Hyderabad, with a BCA from Himalayan
		Garhwal University and a strong focus on building real-time, API-driven analytics solutions that
		solve real-world problems.`,
		`I specialize in converting raw, fast-moving data into actionable business insights using Power BI,
		SQL, and Python, with expertise in time-series forecasting, public data automation, and dashboard
		storytelling. I hold certifications in Power BI and Advanced SQL.`,
		`I thrive on solving complex, practical challenges in agriculture, energy, public health, and
		technology by designing custom KPIs, automating insights, and clearly communicating data stories
		that drive smarter decisions.`,
		`Whether remote or on-site, I bring strong business context, curiosity, and rapid learning to every
		project.`,
	}

	Built = []string{
		"Forecasted farm input price volatility using ARIMA/Prophet + Power BI across 10+ Indian states",
		"Built a real-time tech sentiment tracker analyzing 12,000+ tweets per day",
		"Mapped EV charging station infrastructure gaps across India using geo-visual analytics",
		"Modeled retail price elasticity to optimize discount strategy and revenue growth",
		"Developed a Human Longevity Index using World Bank API to expose health disparity patterns globally",
	}

	Result = "Improved early price spike detection by up to 22% in farm cost forecasting (test simulation)"

	TopSkills = []string{"Python", "MySQL", "Power BI", "Excel"}

	SkillCategories = []SkillCategory{
		{
			Title:  "Programming & Data Analysis",
			Skills: []string{
				"Python (Pandas, NumPy, Seaborn, Matplotlib)",
				"SQL (Advanced queries, joins, subqueries)",
				"MySQL",
				"Excel (VLOOKUP, Pivot Tables, Dashboarding)",
			},
		},
		{
			Title:  "Data Visualization",
			Skills: []string{
				"Power BI (DAX, Power Query, Custom Maps, KPI Cards)",
				"Tableau",
				"Excel Dashboards",
			},
		},
		{
			Title:  "Data Engineering",
			Skills: []string{
				"REST API Integration (CoinGecko, Open Charge Map)",
				"Real-Time Data Pipelines",
				"Data Extraction, Transformation & Loading (ETL)",
			},
		},
		{
			Title:  "Analytics & Statistics",
			Skills: []string{
				"Forecasting Techniques",
				"Clustering & Segmentation",
				"Price Elasticity Modeling",
				"KPI Definition & Performance Analysis",
				"Geospatial Analysis (Shapefiles, State-wise Aggregation)",
			},
		},
		{
			Title:    "Documentation & Communication",
			Business: true,
			Skills:   []string{
				"BRD (Business Requirements Document)",
				"FRD (Functional Requirements Document)",
				"DRD (Data Requirements Document)",
				"RACI Matrix, UML Diagrams",
			},
		},
		{
			Title:    "Stakeholder Engagement",
			Business: true,
			Skills:   []string{
				"Requirement Gathering & Analysis",
				"User Acceptance Testing (UAT)",
				"Cross-functional Collaboration",
				"Business Impact Communication",
			},
		},
		{
			Title:    "Tools & Platforms",
			Business: true,
			Skills:   []string{
				"JIRA, Confluence, Notion",
				"Lucidchart, Figma",
				"Microsoft Office Suite (Excel, PowerPoint, Word)",
				"Agile / Scrum Framework",
			},
		},
		{
			Title:    "Soft Skills",
			Business: true,
			Skills:   []string{
				"Business Communication",
				"Problem Solving & Critical Thinking",
				"Data Storytelling",
				"Stakeholder Management",
				"Attention to Detail",
				"Time Management & Self-Discipline",
			},
		},
	}

	HeroButtons = []Link{
		{Label: "View Projects", Href: "#projects", Primary: true},
		{Label: "Download Resume", Href: "/static/SunilKumarReddy_DataAnalyst_Resume_2025.pdf", External: true},
		{Label: "View Dashboards", Href: "https://github.com/Sunil5411", External: true},
		{Label: "Case Study", Href: "#projects"},
		{Label: "Let's Connect", Href: "#contact"},
	}

	Educations = []Education{
		{
			Degree:      "Bachelor of Computer Application",
			Institution: "HIMALAYAN GARHWAL UNIVERSITY",
			Location:    "Uttarakhand, India",
			Grade:       "7.55/10",
			Period:      "2019 - 2021",
			Coursework:  []string{
				"Data Analysis & Visualization",
				"Forecasting Techniques",
				"Statistical Methods",
				"Data Storytelling",
			},
		},
		{
			Degree:      "Intermediate",
			Institution: "Narayana Junior College",
			Location:    "Y.S.R District",
			Grade:       "67/100",
			Period:      "2017 - 2018",
		},
	}

	Projects = []Project{
		{
			Title: "EV Charging Station Utilization Dashboard",
			Emoji: "🚗⚡",
			Description: `A complete data analytics solution to analyze EV station performance, optimize utilization,
			and support strategic infrastructure planning using real-time data pipelines and interactive dashboards.`,
			TechStack: []string{"Python", "MySQL", "Power BI", "Open Charge Map API"},
			Highlights: []string{
				"Processed 2,000+ EV charging sessions",
				"Identified 93% average utilization rate",
				"Automated full data pipeline",
				"Delivered actionable insights for optimization",
			},
			KPIs: []string{
				"Average Utilization Rate (%)",
				"Peak-Hour Load Index",
				"Station Downtime Frequency",
				"Regional Demand Clustering",
				"Underperforming Station Score",
			},
			Repo: "https://github.com/Sunil5411/EV-Charging-Station-Utilization",
		},
		{
			Title: "Retail Sales Optimization via Price Elasticity",
			Emoji: "💸",
			Description: `Boost revenue with smart pricing! This project analyzes price elasticity to optimize retail
			sales, enhance margins, and drive strategic discounting using data science and visualization.`,
			TechStack: []string{"Python", "Excel", "Power BI", "Statistical Modeling"},
			Highlights: []string{
				"Performed price elasticity analysis (ε > 1.5)",
				"Forecasted 22% increase in revenue",
				"Created interactive dashboards",
				"Improved campaign ROI by 18%",
			},
			KPIs: []string{
				"Elasticity Score per SKU",
				"Revenue Lift Index",
				"Optimal Discount Threshold",
				"Profit Margin Stability Rate",
				"Price Sensitivity Clusters",
			},
			Repo: "https://github.com/Sunil5411/Retail-Sales-Optimization-via-Price-Elasticity",
		},
		{
			Title: "Real-Time Social Media Sentiment Tracker",
			Emoji: "🧠💬",
			Description: `Leverage Twitter data to understand real-time public sentiment on trending tech skills across
			India. Built with NLP, Python, and Power BI to drive data-backed digital engagement.`,
			TechStack: []string{"Python", "Twitter API", "TextBlob", "MySQL", "Power BI"},
			Highlights: []string{
				"Streamed 12,000+ tweets in real time",
				"Applied NLP sentiment analysis",
				"Built interactive Power BI dashboards",
				"Achieved 60% reduction in manual monitoring",
			},
			KPIs: []string{
				"Positive Sentiment Share (%)",
				"City-wise Sentiment Index",
				"Sentiment Volatility Score",
				"Tech Skill Mention Frequency",
				"Engagement Influence Score",
			},
			Repo: "https://github.com/Sunil5411/Real-Time-Social-Media-Sentiment-Tracker-on-Tech-Skills-in-India",
		},
		{
			Title: "Cryptocurrency Market Intelligence Dashboard",
			Emoji: "₿📊",
			Description: `Track real-time cryptocurrency trends, volatility, dominance, and top movers using Python,
			MySQL, and Power BI. This dashboard gives crypto traders and investors a live view of critical metrics.`,
			TechStack: []string{"Python", "MySQL", "Power BI", "CoinGecko API"},
			Highlights: []string{
				"Real-time price and market cap for top 20 coins",
				"24H trading volume for liquidity tracking",
				"Volatility index over the last 24 hours",
				"Interactive filters by coin, rank, and category",
			},
			KPIs: []string{
				"Real-Time Price & Market Cap",
				"24H Trading Volume",
				"Price Volatility Index (24H)",
				"Market Dominance by Coin",
				"Top Gainers & Losers (24H)",
			},
			Repo: "https://github.com/Sunil5411/Cryptocurrency-Market-Intelligence-Dashboard",
		},
		{
			Title: "Farm Input Price Volatility Analysis & Forecasting",
			Emoji: "🌾📉",
			Description: `Forecasting fertilizer, diesel, and seed price swings across Indian states using time-series
			modeling (ARIMA/Prophet) to predict input cost shocks that affect farmer profitability.`,
			TechStack: []string{"Python", "Prophet", "ARIMA", "MySQL", "Power BI"},
			Highlights: []string{
				"Forecasted prices across 10+ Indian states with 80% accuracy",
				"Built seasonal input cost trend dashboard",
				"Conducted time-series analysis with anomaly detection",
				"Automated entire pipeline for weekly updates",
			},
			KPIs: []string{
				"Input Price Volatility Index (IPVI)",
				"Forecast Accuracy Score",
				"Early Price Spike Alert Lead Time",
				"State-wise Seasonal Price Deviation %",
				"Savings Potential from Forecast Adoption",
			},
			Repo: "https://github.com/Sunil5411/Farm-Input-Price-Volatility-Analysis-Forecasting",
		},
		{
			Title: "Human Longevity Index",
			Emoji: "🌍💊",
			Description: `API-powered global index ranking countries by human longevity factors: real-time health,
			sanitation, and inequality insights from World Bank data with predictive modeling and risk assessment.`,
			TechStack: []string{"Python", "World Bank API", "Plotly", "Streamlit", "Machine Learning"},
			Highlights: []string{
				"Integrated World Bank API for 150+ countries' health data",
				"Built composite 'Longevity Score' ranking formula",
				"Applied regression/correlation analysis of longevity factors",
				"Created choropleth maps and regional trend analysis",
				"Automated annual data refresh with risk flagging system",
			},
			KPIs: []string{
				"Longevity Impact Score (Composite Ranking)",
				"Top 5 Positive Predictors of Long Life",
				"Health vs Wealth Index",
				"Policy Risk Index (Obesity + Pollution + Spend Gap)",
				"Longevity Delta (Life Expectancy vs Regional Avg)",
			},
			Repo: "https://github.com/Sunil5411/Human-Longevity-Index",
		},
	}

	Certifications = []Certification{
		{
			Title:       "SQL Advanced Certification",
			Issuer:      "HackerRank",
			Date:        "March 2025",
			Completed:   true,
			Description: "Advanced SQL concepts including complex joins, subqueries, window functions, and performance optimization.",
			Skills:      []string{"Advanced SQL", "Query Optimization", "Database Design", "Performance Tuning"},
			URL:         "#",
		},
		{
			Title:       "Data Analyst Bootcamp",
			Issuer:      "Grow Data Skills",
			Date:        "August 2025",
			Description: "Comprehensive data analysis program covering Python, SQL, Power BI, and advanced analytics techniques.",
			Skills:      []string{"Python", "Data Visualization", "Statistical Analysis", "Business Intelligence"},
			URL:         "#",
		},
	}

	PlannedCertifications = []string{"Machine Learning", "Cloud Analytics", "Advanced Statistics", "Data Engineering"}

	ContactCards = []ContactCard{
		{Label: "Email", Value: "sunilkumareddy8@gmail.com", Href: "mailto:sunilkumareddy8@gmail.com"},
		{Label: "Phone", Value: "+91 9380691205", Href: "tel:+919380691205"},
		{Label: "LinkedIn", Value: "linkedin.com/in/sunilreddy-data-analyst", Href: "https://linkedin.com/in/sunilreddy-data-analyst"},
		{Label: "GitHub", Value: "github.com/Sunil5411", Href: "https://github.com/Sunil5411"},
	}

	Location     = "Hyderabad, Telangana"
	Availability = []string{"Open to Remote", "Willing to Relocate", "Immediate Joiner"}
)
