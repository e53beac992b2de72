package quiz

import "github.com/conorfennell/notehash/internal/domain"

// DefaultQuestions returns the built-in "Guess the Animal" set in its fixed order.
func DefaultQuestions() []domain.Question {
	return []domain.Question{
		{Text: "What is the largest land animal?", Options: []string{"Elephant", "Giraffe", "Rhinoceros", "Hippopotamus"}, CorrectAnswer: 0},
		{Text: "Which animal is known as the King of the Jungle?", Options: []string{"Tiger", "Lion", "Elephant", "Bear"}, CorrectAnswer: 1},
		{Text: "What is the fastest land animal?", Options: []string{"Cheetah", "Lion", "Antelope", "Horse"}, CorrectAnswer: 0},
		{Text: "Which animal is known for its black and white stripes?", Options: []string{"Zebra", "Tiger", "Penguin", "Panda"}, CorrectAnswer: 0},
		{Text: "What is the tallest animal in the world?", Options: []string{"Elephant", "Giraffe", "Kangaroo", "Camel"}, CorrectAnswer: 1},
		{Text: "Which bird is often associated with delivering babies?", Options: []string{"Stork", "Eagle", "Sparrow", "Owl"}, CorrectAnswer: 0},
		{Text: "What is the largest species of shark?", Options: []string{"Great White Shark", "Hammerhead Shark", "Whale Shark", "Tiger Shark"}, CorrectAnswer: 2},
		{Text: "Which animal is known for its ability to change colors?", Options: []string{"Chameleon", "Octopus", "Frog", "Snake"}, CorrectAnswer: 0},
		{Text: "What is the main diet of a Panda?", Options: []string{"Fish", "Bamboo", "Insects", "Fruits"}, CorrectAnswer: 1},
		{Text: "Which mammal is known for having a pouch to carry its young?", Options: []string{"Kangaroo", "Elephant", "Lion", "Wolf"}, CorrectAnswer: 0},
	}
}
