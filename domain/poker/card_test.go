package poker

import (
	"encoding/json"
	"testing"
)

func TestConvertCard(t *testing.T) {
	expectedCard := Card{suit: Heart, rank: 2}
	testCard, err := IntToCard(28)
	if err != nil {
		t.Fatal(err)
	}
	if testCard != expectedCard {
		t.Fatalf("expected %v, get %v", expectedCard, testCard)
	}
}

func TestAllCardConvert(t *testing.T) {
	seen := map[Card]bool{}
	for i := 1; i < 53; i++ {
		c, err := IntToCard(i)
		if err != nil {
			t.Fatal(err)
		}
		if CardToInt(c) != i {
			t.Fatalf("CardToInt(%v) = %d, want %d", c, CardToInt(c), i)
		}
		if seen[c] {
			t.Fatalf("card %v produced twice", c)
		}
		seen[c] = true
	}
	if _, err := IntToCard(0); err == nil {
		t.Fatal("expected error for card 0")
	}
	if _, err := IntToCard(53); err == nil {
		t.Fatal("expected error for card 53")
	}
}

func TestCardStringFaces(t *testing.T) {
	c := Card{suit: Heart, rank: 1}
	if c.String() != "A♥" {
		t.Fatalf("expected A♥, got %s", c.String())
	}
	c = Card{suit: Club, rank: 11}
	if c.String() != "J♣" {
		t.Fatalf("expected J♣, got %s", c.String())
	}
	if (Card{}).String() != FaceDown {
		t.Fatalf("expected face down card to print %s", FaceDown)
	}
}

func TestNewCardRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		suit uint8
		rank uint8
	}{
		{"rank zero", Club, 0},
		{"rank too high", Club, 14},
		{"suit too high", 4, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCard(tt.suit, tt.rank); err == nil {
				t.Fatalf("NewCard(%d, %d) should fail", tt.suit, tt.rank)
			}
		})
	}
}

func TestCardJSON(t *testing.T) {
	c := MustCard(Spade, Queen)
	b, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"suit":3,"rank":12}` {
		t.Fatalf("unexpected encoding %s", b)
	}
	var decoded Card
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded != c {
		t.Fatalf("expected %v, got %v", c, decoded)
	}
	if err := json.Unmarshal([]byte(`{"suit":9,"rank":3}`), &decoded); err == nil {
		t.Fatal("expected error decoding an invalid suit")
	}
}
