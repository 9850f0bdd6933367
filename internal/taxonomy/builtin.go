package taxonomy

// ITCategories returns the built-in IT skill catalog.
func ITCategories() []Category {
	return []Category{
		{Name: CategoryLanguages, Skills: []string{
			"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "Go", "Golang",
			"PHP", "Ruby", "Swift", "Kotlin", "Rust", "Scala", "R", "SQL", "HTML", "CSS",
		}},
		{Name: CategoryBackend, Skills: []string{
			"Django", "Flask", "FastAPI", "Spring", "Spring Boot", "Node.js", "Express",
			"NestJS", "Laravel", "Symfony", "Rails", "ASP.NET", ".NET", "Gin", "Echo",
		}},
		{Name: CategoryFrontend, Skills: []string{
			"React", "Vue", "Angular", "Svelte", "Next.js", "Nuxt", "Redux", "MobX",
			"jQuery", "Bootstrap", "Tailwind", "Material-UI", "Ant Design",
		}},
		{Name: CategoryDatabases, Skills: []string{
			"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch", "SQLite",
			"Oracle", "MS SQL", "Cassandra", "DynamoDB", "ClickHouse", "Kafka",
		}},
		{Name: CategoryDevOps, Skills: []string{
			"Docker", "Kubernetes", "Jenkins", "GitLab CI", "GitHub Actions", "Terraform",
			"Ansible", "AWS", "Azure", "GCP", "CI/CD", "Nginx", "Apache",
		}},
		{Name: CategoryDataScience, Skills: []string{
			"Pandas", "NumPy", "Scikit-learn", "TensorFlow", "PyTorch", "Keras",
			"Jupyter", "Matplotlib", "Seaborn", "OpenCV", "NLTK", "SpaCy", "Transformers",
			"LLM", "NLP", "ML", "Machine Learning", "Deep Learning", "Computer Vision",
		}},
		{Name: CategoryMobile, Skills: []string{
			"React Native", "Flutter", "iOS", "Android", "SwiftUI", "Jetpack Compose",
		}},
		{Name: CategoryTesting, Skills: []string{
			"Pytest", "Jest", "Selenium", "Cypress", "JUnit", "TestNG", "Postman",
		}},
		{Name: CategoryOther, Skills: []string{
			"Git", "REST API", "GraphQL", "gRPC", "Microservices", "Agile", "Scrum",
			"Linux", "Unix", "WebSocket", "OAuth", "JWT", "SOLID", "OOP",
		}},
	}
}

// ITSpecializations returns the built-in IT specialization rules.
func ITSpecializations() []Specialization {
	return []Specialization{
		{Label: SpecBackend, Keywords: []string{"backend", "бэкенд", "бекенд", "server", "api"}},
		{Label: SpecFrontend, Keywords: []string{"frontend", "фронтенд", "react", "vue", "angular", "web"}},
		{Label: SpecFullstack, Keywords: []string{"fullstack", "full-stack", "full stack", "фулстек"}},
		{Label: SpecDataScience, Keywords: []string{"data scientist", "ml engineer", "machine learning", "nlp", "аналитик"}},
		{Label: SpecDevOps, Keywords: []string{"devops", "sre", "infrastructure", "kubernetes", "docker"}},
		{Label: SpecMobile, Keywords: []string{"mobile", "ios", "android", "react native", "flutter"}},
		{Label: SpecQA, Keywords: []string{"qa", "quality assurance", "тестировщик", "test", "manual qa", "автотестирование"}},
		{Label: SpecProductManager, Keywords: []string{"product manager", "pm", "продакт", "менеджер продукта"}},
		{Label: SpecProjectManager, Keywords: []string{"project manager", "руководитель проекта"}},
	}
}

// Industrial returns the manufacturing-sector extension: machining, welding,
// automation, warehouse and quality roles.
func Industrial() Extension {
	return Extension{
		Name: "industrial",
		Categories: []Category{
			{Name: "industrial_cad", Skills: []string{
				"AutoCAD", "SolidWorks", "КОМПАС-3D", "Inventor", "CATIA", "T-FLEX",
			}},
			{Name: "industrial_automation", Skills: []string{
				"PLC", "ПЛК", "SCADA", "TIA Portal", "Modbus", "CODESYS", "КИПиА",
			}},
			{Name: "industrial_machining", Skills: []string{
				"ЧПУ", "CNC", "Fanuc", "Heidenhain", "Sinumerik",
			}},
			{Name: "industrial_welding", Skills: []string{
				"MIG", "TIG", "MMA", "РДС", "НАКС",
			}},
			{Name: "industrial_logistics", Skills: []string{
				"WMS", "1С", "SAP", "ERP", "MES",
			}},
			{Name: "industrial_quality", Skills: []string{
				"ISO 9001", "ГОСТ", "5S", "Lean", "Six Sigma", "FMEA",
			}},
			{Name: "industrial_safety", Skills: []string{
				"Электробезопасность", "Промышленная безопасность",
			}},
		},
		Specializations: []Specialization{
			{Label: "Логист", Keywords: []string{"логист"}},
			{Label: "Токарь", Keywords: []string{"токарь", "токарн"}},
			{Label: "Инженер-конструктор", Keywords: []string{"инженер-конструктор", "инженер конструктор"}},
			{Label: "Водитель погрузчика", Keywords: []string{"водитель погрузчика", "погрузчик"}},
			{Label: "Слесарь", Keywords: []string{"слесарь"}},
			{Label: "Мастер участка", Keywords: []string{"мастер участка"}},
			{Label: "Грузчик", Keywords: []string{"грузчик"}},
			{Label: "Инженер по автоматизации", Keywords: []string{"инженер по автоматизации", "асу тп"}},
			{Label: "Сварщик", Keywords: []string{"сварщик", "сварочн"}},
			{Label: "Электромонтажник", Keywords: []string{"электромонтажник", "электромонтаж"}},
			{Label: "Фрезеровщик", Keywords: []string{"фрезеровщик", "фрезерн"}},
			{Label: "Инженер-технолог", Keywords: []string{"инженер-технолог", "инженер технолог"}},
			{Label: "Кладовщик", Keywords: []string{"кладовщик"}},
			{Label: "Контролер ОТК", Keywords: []string{"контролер отк", "контролёр отк"}},
			{Label: "Инженер по качеству", Keywords: []string{"инженер по качеству"}},
			{Label: "Инженер по охране труда", Keywords: []string{"инженер по охране труда", "специалист по охране труда"}},
			{Label: "Инженер ПТО", Keywords: []string{"инженер пто"}},
			{Label: "Нормировщик", Keywords: []string{"нормировщик"}},
			{Label: "Слесарь-ремонтник", Keywords: []string{"слесарь-ремонтник"}},
			{Label: "Наладчик оборудования", Keywords: []string{"наладчик"}},
		},
	}
}
