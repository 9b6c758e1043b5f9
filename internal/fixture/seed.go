package fixture

import "github.com/lamdh/gradeview/internal/model"

// Seeded accounts. Tokens are opaque fixed strings so a session can be
// replayed across restarts against the same fixture.
type account struct {
	Password string
	Token    string
	User     model.User
}

func seedAccounts() map[string]account {
	return map[string]account{
		"teacher@example.com": {
			Password: "password",
			Token:    "fixture-token-teacher",
			User: model.User{
				ID:    "t1",
				Name:  "John Teacher",
				Email: "teacher@example.com",
				Role:  model.RoleTeacher,
			},
		},
		"student@example.com": {
			Password: "password",
			Token:    "fixture-token-student",
			User: model.User{
				ID:    "s1",
				Name:  "Jane Student",
				Email: "student@example.com",
				Role:  model.RoleStudent,
			},
		},
	}
}

func seedExams() []model.Exam {
	return []model.Exam{
		{
			ID:         "exam2",
			Title:      "Final Exam - CS101",
			CourseID:   "cs101",
			UploadDate: "2023-05-20",
			Status:     model.ExamProcessing,
		},
		{
			ID:         "exam3",
			Title:      "Quiz 3 - Math202",
			CourseID:   "math202",
			UploadDate: "2023-05-10",
			Status:     model.ExamGraded,
		},
		{
			ID:         "exam1",
			Title:      "Midterm Exam - CS101",
			CourseID:   "cs101",
			UploadDate: "2023-04-15",
			Status:     model.ExamGraded,
		},
	}
}

func seedStudentResults() []model.StudentResult {
	return []model.StudentResult{
		{
			ID:             "result1",
			StudentID:      "s1",
			StudentName:    "Jane Student",
			ExamID:         "exam1",
			Score:          85,
			Feedback:       "Good understanding of core concepts. Could improve on application.",
			Status:         model.ResultGraded,
			AnswerSheetURL: "/answer-sheets/answer1.pdf",
		},
		{
			ID:             "result2",
			StudentID:      "s2",
			StudentName:    "Bob Smith",
			ExamID:         "exam1",
			Score:          92,
			Feedback:       "Excellent work overall. Very thorough answers.",
			Status:         model.ResultApproved,
			AnswerSheetURL: "/answer-sheets/answer2.pdf",
		},
		{
			ID:             "result3",
			StudentID:      "s3",
			StudentName:    "Alice Johnson",
			ExamID:         "exam1",
			Score:          78,
			Feedback:       "Understanding of basic concepts but lacking depth in analysis.",
			Status:         model.ResultGraded,
			AnswerSheetURL: "/answer-sheets/answer3.pdf",
		},
		{
			ID:             "result4",
			StudentID:      "s1",
			StudentName:    "Jane Student",
			ExamID:         "exam3",
			Score:          42,
			Feedback:       "Strong proofs; the integration step needs more care.",
			Status:         model.ResultApproved,
			AnswerSheetURL: "/answer-sheets/answer4.pdf",
		},
	}
}

func seedExamResults() []model.ExamResult {
	return []model.ExamResult{
		{
			ID:               "er1",
			ExamID:           "exam1",
			StudentID:        "s1",
			StudentName:      "Jane Student",
			TotalScore:       85,
			MaxPossibleScore: 100,
			GradedDate:       "2023-04-20",
			Status:           model.ResultApproved,
			AnswerSheetURL:   "/answer-sheets/answer1.pdf",
			FeedbackItems: []model.FeedbackItem{
				{
					ID:               "fi1",
					QuestionNumber:   1,
					Score:            30,
					MaxScore:         35,
					Feedback:         "Good definition but could have expanded more on time vs. space complexity trade-offs.",
					SourceReferences: []string{"Textbook pg. 42", "Lecture notes week 3"},
				},
				{
					ID:               "fi2",
					QuestionNumber:   2,
					Score:            25,
					MaxScore:         30,
					Feedback:         "Excellent comparison of time complexities with good examples.",
					SourceReferences: []string{"Textbook pg. 67-68", "Practice problem set 2"},
				},
				{
					ID:               "fi3",
					QuestionNumber:   3,
					Score:            30,
					MaxScore:         35,
					Feedback:         "Implementation works but efficiency analysis could be more thorough.",
					SourceReferences: []string{"Textbook pg. 103-107", "Lecture notes week 5"},
				},
			},
		},
		{
			ID:               "er2",
			ExamID:           "exam3",
			StudentID:        "s1",
			StudentName:      "Jane Student",
			TotalScore:       42,
			MaxPossibleScore: 50,
			GradedDate:       "2023-05-15",
			Status:           model.ResultApproved,
			AnswerSheetURL:   "/answer-sheets/answer4.pdf",
			FeedbackItems: []model.FeedbackItem{
				{
					ID:               "fi4",
					QuestionNumber:   1,
					Score:            9,
					MaxScore:         10,
					Feedback:         "Correct application of the formula with clear steps.",
					SourceReferences: []string{"Textbook pg. 128", "Practice problem 7.2"},
				},
				{
					ID:               "fi5",
					QuestionNumber:   2,
					Score:            18,
					MaxScore:         20,
					Feedback:         "Excellent proof. Very well structured and logically sound.",
					SourceReferences: []string{"Lecture notes week 7", "Supplementary reading 3"},
				},
				{
					ID:               "fi6",
					QuestionNumber:   3,
					Score:            15,
					MaxScore:         20,
					Feedback:         "Good approach but missed a key step in the integration.",
					SourceReferences: []string{"Textbook pg. 156", "Example 8.4"},
				},
			},
		},
	}
}

func seedRubrics() map[string]model.Rubric {
	return map[string]model.Rubric{
		"exam1": {
			ID:     "rubric1",
			ExamID: "exam1",
			Items: []model.RubricItem{
				{
					ID:             "r1",
					QuestionNumber: 1,
					Criteria:       "Define and explain the concept of computational complexity",
					MaxScore:       35,
					ExpectedAnswer: "Computational complexity refers to the amount of resources required to solve a problem...",
				},
				{
					ID:             "r2",
					QuestionNumber: 2,
					Criteria:       "Compare and contrast O(n) and O(n^2) algorithms",
					MaxScore:       30,
					ExpectedAnswer: "O(n) algorithms demonstrate linear time complexity where the time to execute is directly proportional...",
				},
				{
					ID:             "r3",
					QuestionNumber: 3,
					Criteria:       "Implement a sorting algorithm and analyze its efficiency",
					MaxScore:       35,
					ExpectedAnswer: "A valid implementation of any standard sorting algorithm (e.g., quicksort, mergesort)...",
				},
			},
		},
		"exam3": {
			ID:     "rubric2",
			ExamID: "exam3",
			Items: []model.RubricItem{
				{
					ID:             "r4",
					QuestionNumber: 1,
					Criteria:       "Apply the integration formula to the given function",
					MaxScore:       10,
					ExpectedAnswer: "Substitute into the standard form and integrate term by term...",
				},
				{
					ID:             "r5",
					QuestionNumber: 2,
					Criteria:       "Prove the convergence of the given series",
					MaxScore:       20,
					ExpectedAnswer: "Apply the ratio test; the limit is strictly less than one...",
				},
				{
					ID:             "r6",
					QuestionNumber: 3,
					Criteria:       "Evaluate the definite integral using substitution",
					MaxScore:       20,
					ExpectedAnswer: "Let u equal the inner function, adjust the bounds, and integrate...",
				},
			},
		},
	}
}
