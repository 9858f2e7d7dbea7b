package feedback

// MockMetrics returns a fixed sample used for demos and local testing when the
// backend has no report to offer.
func MockMetrics() RawMetrics {
	return RawMetrics{
		F1Score:    Score(0.75),
		RougeScore: Score(0.68),
		BleuScore:  Score(0.72),
		QuestionAnswers: []QuestionAnswer{
			{
				Question:    "Explain the concept of REST API.",
				UserAnswer:  "REST APIs use HTTP methods like GET, POST, PUT, DELETE to perform operations on resources identified by URLs.",
				IdealAnswer: "REST (Representational State Transfer) is an architectural style for designing networked applications. REST APIs use HTTP methods (GET, POST, PUT, DELETE) to perform operations on resources identified by URLs. They're stateless, cacheable, and provide a uniform interface.",
				Score:       0.78,
			},
			{
				Question:    "What's the difference between let and var in JavaScript?",
				UserAnswer:  "let is block scoped and var is function scoped.",
				IdealAnswer: "The key differences between let and var are: 1) let is block-scoped while var is function-scoped, 2) let variables cannot be redeclared in the same scope, 3) let variables are not hoisted to the top of their scope, and 4) let variables cannot be accessed before declaration (temporal dead zone).",
				Score:       0.45,
			},
		},
	}
}
