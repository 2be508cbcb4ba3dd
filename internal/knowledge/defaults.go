package knowledge

var defaultSkills = []string{
	// programming
	"python", "java", "javascript", "typescript", "c++", "dart", "flutter", "kotlin", "swift",
	// data
	"sql", "mysql", "postgresql", "mongodb", "pandas", "numpy", "matplotlib", "scikit-learn", "tensorflow", "pytorch",
	// web/app
	"react", "node", "express", "django", "flask", "fastapi", "html", "css", "rest api", "graphql",
	// cloud/devops
	"docker", "kubernetes", "aws", "gcp", "azure", "git", "ci/cd", "linux",
	// soft skills
	"communication", "leadership", "teamwork", "problem solving", "time management",
}

var defaultAcronyms = []string{"sql", "html", "css", "api", "aws", "gcp", "ci", "cd"}

var defaultCareers = []CareerDefinition{
	{
		ID:             "Data Analyst",
		RequiredSkills: []string{"python", "sql", "excel", "pandas"},
		StudyLevel:     "Beginner",
		CourseLink:     "https://www.coursera.org/professional-certificates/google-data-analytics",
		PlaylistLink:   "https://www.youtube.com/playlist?list=PLh6T5unK3Jma2PbgM3N3aR6Vrn956SpaV",
		Roadmap:        "Master SQL, Excel, Python, Pandas. Then build dashboards using PowerBI/Tableau.",
	},
	{
		ID:             "Machine Learning Engineer",
		RequiredSkills: []string{"python", "machine learning", "tensorflow", "pytorch"},
		StudyLevel:     "Intermediate",
		CourseLink:     "https://www.coursera.org/learn/machine-learning",
		PlaylistLink:   "https://www.youtube.com/playlist?list=PLZoTAELRMXVN_zzK830t6n3t1Qd23IcQZ",
		Roadmap:        "Start with ML basics, then Linear Regression, Neural Networks and Deep Learning. Finish by deploying models.",
	},
	{
		ID:             "Frontend Developer",
		RequiredSkills: []string{"html", "css", "javascript", "react"},
		StudyLevel:     "Beginner",
		CourseLink:     "https://www.udemy.com/course/the-complete-web-developer-zero-to-mastery/",
		PlaylistLink:   "https://www.youtube.com/playlist?list=PLu0W_9lII9aiL0kysYk5-wFjvgLQ1QYxH",
		Roadmap:        "HTML, CSS, JavaScript, React, responsive design. Build portfolio projects.",
	},
	{
		ID:             "Backend Developer",
		RequiredSkills: []string{"python", "django", "flask", "sql", "api"},
		StudyLevel:     "Intermediate",
		CourseLink:     "https://www.udemy.com/course/python-django-the-practical-guide/",
		PlaylistLink:   "https://www.youtube.com/playlist?list=PLu0W_9lII9ah7DDtYtflgwMwpT3xmjXY9",
		Roadmap:        "Learn APIs, Databases, Authentication, Deployment. Build real-world REST APIs.",
	},
	{
		ID:             "AI Engineer",
		RequiredSkills: []string{"python", "machine learning", "data science"},
		StudyLevel:     "Advanced",
		CourseLink:     "https://www.deeplearning.ai/",
		PlaylistLink:   "https://www.youtube.com/playlist?list=PLh6T5unK3JmYpQn1nO3MHaiA0oDBk8Qni",
		Roadmap:        "Deep Learning, NLP, Transformers, model training and optimization.",
	},
}

var defaultExams = []ExamDefinition{
	{
		Title:       "GATE (CS)",
		Type:        "Government",
		Eligibility: "btech engineering programming data structures algorithms",
		ApplyLink:   "https://gate.iitkgp.ac.in",
	},
	{
		Title:       "SSC CGL",
		Type:        "Government",
		Eligibility: "graduate reasoning maths english general awareness",
		ApplyLink:   "https://ssc.nic.in",
	},
	{
		Title:       "ISRO Scientist",
		Type:        "Government",
		Eligibility: "engineering programming electronics computer science",
		ApplyLink:   "https://www.isro.gov.in",
	},
	{
		Title:       "TCS NQT",
		Type:        "Private",
		Eligibility: "graduate aptitude programming communication",
		ApplyLink:   "https://www.tcs.com",
	},
	{
		Title:       "Infosys InfyTQ",
		Type:        "Private",
		Eligibility: "java python software development",
		ApplyLink:   "https://infytq.onwingspan.com",
	},
	{
		Title:       "Google Data Internship",
		Type:        "Internship",
		Eligibility: "python sql data science machine learning",
		ApplyLink:   "https://careers.google.com",
	},
}
