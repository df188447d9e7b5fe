package digest

import "testing"

var sample = []byte("dhash canonical bytes")

func TestSum_KnownAnswer(t *testing.T) {
	want := "199ef727062cfce35a802344c05ba1b541f34681c8ace660ba442fdc0ac345ea"
	if got := Sum(sample); got != want {
		t.Fatalf("Sum: got %s want %s", got, want)
	}
	if got := Sum(sample); len(got) != FullLength {
		t.Fatalf("Sum length %d, want %d", len(got), FullLength)
	}
}

func TestSumWith_KnownAnswers(t *testing.T) {
	cases := []struct {
		alg  Algorithm
		want string
	}{
		{SHA256, "199ef727062cfce35a802344c05ba1b541f34681c8ace660ba442fdc0ac345ea"},
		{SHA512, "c067c3bc4cbd94b3ae3507166e3119d207c608e90496d1bd8db9c2a9eab39c72b77c0dcce10414e349bc5b97df5217fccccc09c7a61217327ca05f37b6cfc9e1"},
		{SHA3256, "d1b7c0ef0b1c757f9b3a7c2f341c749bfa4b79e7b4c6ee4abe757438ab393756"},
	}
	for _, tc := range cases {
		got, err := SumWith(tc.alg, sample)
		if err != nil {
			t.Fatalf("SumWith(%s): %v", tc.alg, err)
		}
		if got != tc.want {
			t.Fatalf("SumWith(%s): got %s want %s", tc.alg, got, tc.want)
		}
	}
}

func TestSumWith_UnknownAlgorithm(t *testing.T) {
	if _, err := SumWith(Algorithm("md5"), sample); err == nil {
		t.Fatalf("expected failure for unknown algorithm")
	}
}

func TestApproximate_KnownAnswer(t *testing.T) {
	want := "5c651791a9a03ff8"
	if got := Approximate(sample); got != want {
		t.Fatalf("Approximate: got %s want %s", got, want)
	}
}

func TestApproximate_ShorterThanFull(t *testing.T) {
	full := Sum(sample)
	approx := Approximate(sample)
	if len(approx) != ApproximateLength {
		t.Fatalf("approximate length %d, want %d", len(approx), ApproximateLength)
	}
	if len(approx) >= len(full) {
		t.Fatalf("approximate digest must be strictly shorter than full")
	}
}

func TestDigests_Deterministic(t *testing.T) {
	for i := 0; i < 50; i++ {
		if Sum(sample) != Sum(sample) {
			t.Fatalf("Sum is not deterministic")
		}
		if Approximate(sample) != Approximate(sample) {
			t.Fatalf("Approximate is not deterministic")
		}
	}
}

func TestDigests_InputSensitivity(t *testing.T) {
	other := []byte("dhash canonical bytes ")
	if Sum(sample) == Sum(other) {
		t.Fatalf("distinct inputs share a full digest")
	}
	if Approximate(sample) == Approximate(other) {
		t.Fatalf("distinct inputs share an approximate digest")
	}
}
