package match

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"both empty", "", "", 0},
		{"equal", "PAID", "PAID", 0},
		{"from empty", "", "abc", 3},
		{"to empty", "xyz", "", 3},
		{"substitution", "cat", "cut", 1},
		{"deletion", "cart", "cat", 1},
		{"insertion", "cat", "cast", 1},
		{"mixed edits", "flaw", "lawn", 2},
		{"long mixed", "intention", "execution", 5},
		{"typo missing letter", "PENDNG", "PENDING", 1},
		{"spelling variant", "CANCELED", "CANCELLED", 1},
		{"typo wrong letter", "SHIPPED", "SHOPPED", 1},
		{"nothing shared", "DHL", "UPS", 3},
		{"case differs everywhere", "paid", "PAID", 4},
		{"case differs once", "Pending", "pending", 1},
		{"multi-byte rune counts once", "naïve", "naive", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Levenshtein(tt.a, tt.b); got != tt.want {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}

			// Distance is symmetric.
			if got := Levenshtein(tt.b, tt.a); got != tt.want {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func BenchmarkClosest(b *testing.B) {
	candidates := []string{"PENDING", "PAID", "SHIPPED", "DELIVERED", "CANCELLED", "REFUNDED"}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		Closest("CANCELED", candidates, 2)
	}
}
