package entity

import "testing"

func TestGuessName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		email  string
		expect string
	}{
		{
			name:   "line above email",
			text:   "RESUME OF A SOFTWARE ENGINEER WITH EXPERIENCE\nJane Doe\njane@example.com",
			email:  "jane@example.com",
			expect: "Jane Doe",
		},
		{
			name:   "earliest of the two preceding lines wins",
			text:   "Header\nJohn Ronald Smith\nSenior Data Analyst\njohn@example.com",
			email:  "john@example.com",
			expect: "John Ronald Smith",
		},
		{
			name:   "candidate must start with a letter",
			text:   "Profile summary that is long enough to skip here\n42 Baker Street\njohn@example.com",
			email:  "john@example.com",
			expect: "",
		},
		{
			name:   "looks two lines above when the closest is one word",
			text:   "Ravi Kumar\nContact\nravi@example.com",
			email:  "ravi@example.com",
			expect: "Ravi Kumar",
		},
		{
			name:   "no email uses short first line",
			text:   "\n\n   Anita Desai  \nsomething else",
			expect: "Anita Desai",
		},
		{
			name:   "no email and long first line",
			text:   "I am a passionate engineer who loves building things\nAnita Desai",
			expect: "",
		},
		{
			name:   "empty text",
			text:   " \n\t\n",
			expect: "",
		},
		{
			name:   "windows line endings",
			text:   "Meera Nair\r\nmeera@example.com\r\n",
			email:  "meera@example.com",
			expect: "Meera Nair",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := GuessName(tt.text, tt.email); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
