package http

// quickQuestions is the static list served by GET /quick-questions.
var quickQuestions = []string{
	"What programs do you offer?",
	"How do I enroll in a course?",
	"What are the prerequisites for leadership training?",
	"Can you tell me about the course schedule?",
	"What is the cost of your programs?",
	"Do you offer any scholarships or financial aid?",
	"How long are the programs?",
	"What certifications will I receive?",
}
