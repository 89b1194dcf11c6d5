// Package interview selects tiered technical questions for a declared tech
// stack.
package interview

import "fmt"

// Tier buckets candidates by years of professional experience.
type Tier string

const (
	TierJunior Tier = "junior"
	TierMid    Tier = "mid"
	TierSenior Tier = "senior"
)

// TierFor maps years of experience to a question difficulty tier.
func TierFor(years int) Tier {
	switch {
	case years < 2:
		return TierJunior
	case years < 5:
		return TierMid
	default:
		return TierSenior
	}
}

// questionBank is the static table of canned questions, keyed by lowercased
// technology name and tier. Technologies missing here get generic template
// questions instead.
var questionBank = map[string]map[Tier][]string{
	"python": {
		TierJunior: {
			"What are the main differences between lists and tuples in Python?",
			"How do you handle exceptions in Python? Can you give an example?",
			"Explain what list comprehensions are and provide a simple example.",
		},
		TierMid: {
			"How would you implement a decorator in Python? What are some use cases?",
			"Explain the difference between __str__ and __repr__ methods in Python classes.",
			"How does Python's GIL (Global Interpreter Lock) affect multithreading?",
		},
		TierSenior: {
			"How would you optimize a Python application for better performance?",
			"Explain metaclasses in Python and when you might use them.",
			"How would you implement a memory-efficient solution for processing large datasets?",
		},
	},
	"javascript": {
		TierJunior: {
			"What's the difference between var, let, and const in JavaScript?",
			"How do you handle asynchronous operations in JavaScript?",
			"Explain what closures are in JavaScript with an example.",
		},
		TierMid: {
			"How does prototypal inheritance work in JavaScript?",
			"What are Promises and how do they differ from callbacks?",
			"Explain event bubbling and event capturing in the DOM.",
		},
		TierSenior: {
			"How would you implement a custom Promise from scratch?",
			"Explain the event loop in JavaScript and how it handles asynchronous operations.",
			"How would you optimize JavaScript code for better performance?",
		},
	},
	"java": {
		TierJunior: {
			"What's the difference between abstract classes and interfaces in Java?",
			"Explain the concept of inheritance in Java with an example.",
			"What are the main principles of Object-Oriented Programming?",
		},
		TierMid: {
			"How does garbage collection work in Java?",
			"Explain the differences between ArrayList and LinkedList.",
			"What are Java generics and why are they useful?",
		},
		TierSenior: {
			"How would you design a thread-safe singleton pattern in Java?",
			"Explain the Java memory model and how it affects concurrent programming.",
			"How would you optimize Java application performance?",
		},
	},
	"react": {
		TierJunior: {
			"What are React hooks and why were they introduced?",
			"Explain the difference between functional and class components in React.",
			"How do you pass data between parent and child components?",
		},
		TierMid: {
			"How does the Virtual DOM work in React?",
			"What are higher-order components (HOCs) and when would you use them?",
			"Explain the React component lifecycle methods.",
		},
		TierSenior: {
			"How would you optimize a React application's performance?",
			"Explain React's reconciliation algorithm and how keys work.",
			"How would you implement server-side rendering with React?",
		},
	},
	"django": {
		TierJunior: {
			"What is the MTV pattern in Django and how does it work?",
			"How do you create and run database migrations in Django?",
			"Explain what Django models are and how they relate to database tables.",
		},
		TierMid: {
			"How do Django's class-based views work and when would you use them?",
			"Explain Django's ORM and how to optimize database queries.",
			"How does Django's authentication system work?",
		},
		TierSenior: {
			"How would you scale a Django application for high traffic?",
			"Explain Django's caching framework and different caching strategies.",
			"How would you implement custom middleware in Django?",
		},
	},
	"mysql": {
		TierJunior: {
			"What's the difference between INNER JOIN and LEFT JOIN?",
			"How do you create an index in MySQL and why would you use one?",
			"Explain what primary keys and foreign keys are.",
		},
		TierMid: {
			"How would you optimize a slow MySQL query?",
			"Explain the different MySQL storage engines and their use cases.",
			"What are MySQL transactions and how do you use them?",
		},
		TierSenior: {
			"How would you design a database schema for high availability?",
			"Explain MySQL replication and different replication strategies.",
			"How would you handle database partitioning in MySQL?",
		},
	},
	"mongodb": {
		TierJunior: {
			"What are the main differences between SQL and NoSQL databases?",
			"How do you query documents in MongoDB?",
			"Explain what collections and documents are in MongoDB.",
		},
		TierMid: {
			"How does indexing work in MongoDB?",
			"Explain MongoDB's aggregation pipeline with an example.",
			"What are the advantages and disadvantages of using MongoDB?",
		},
		TierSenior: {
			"How would you design a MongoDB schema for optimal performance?",
			"Explain MongoDB sharding and when you would use it.",
			"How would you handle data consistency in a distributed MongoDB setup?",
		},
	},
	"docker": {
		TierJunior: {
			"What is Docker and what problems does it solve?",
			"Explain the difference between Docker images and containers.",
			"How do you create a simple Dockerfile?",
		},
		TierMid: {
			"How do Docker volumes work and when would you use them?",
			"Explain Docker networking and different network types.",
			"How would you use Docker Compose for multi-container applications?",
		},
		TierSenior: {
			"How would you optimize Docker images for production use?",
			"Explain Docker orchestration and container management strategies.",
			"How would you implement a CI/CD pipeline with Docker?",
		},
	},
	"aws": {
		TierJunior: {
			"What are the main AWS services you've worked with?",
			"Explain what EC2 instances are and their use cases.",
			"How does AWS S3 work and what is it used for?",
		},
		TierMid: {
			"How would you design a scalable architecture on AWS?",
			"Explain AWS Lambda and when you would use serverless functions.",
			"How does AWS RDS differ from running your own database?",
		},
		TierSenior: {
			"How would you implement a highly available system on AWS?",
			"Explain AWS security best practices and IAM policies.",
			"How would you optimize AWS costs for a large-scale application?",
		},
	},
}

// genericQuestions synthesizes template questions for a technology absent
// from the bank.
func genericQuestions(technology string, tier Tier) []string {
	templates := map[Tier][]string{
		TierJunior: {
			"Can you explain what %s is and what it's used for?",
			"What are the main features or benefits of using %s?",
			"Can you describe a simple project where you used %s?",
		},
		TierMid: {
			"How does %s compare to similar technologies you've used?",
			"What are some best practices when working with %s?",
			"Can you describe a challenging problem you solved using %s?",
		},
		TierSenior: {
			"How would you architect a large-scale system using %s?",
			"What are the performance considerations when using %s?",
			"How would you mentor a junior developer learning %s?",
		},
	}

	chosen, ok := templates[tier]
	if !ok {
		chosen = templates[TierJunior]
	}

	questions := make([]string, len(chosen))
	for i, template := range chosen {
		questions[i] = fmt.Sprintf(template, technology)
	}
	return questions
}
