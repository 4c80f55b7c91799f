package billing

import "testing"

func TestSplitRevenue_RoundTotal(t *testing.T) {
	s := SplitRevenue(100000)
	if s.Gasoline != 10000 || s.Caretaker != 40000 || s.Owner != 50000 {
		t.Fatalf("unexpected split: %+v", s)
	}
}

func TestSplitRevenue_SumsToTotal(t *testing.T) {
	for _, total := range []int64{0, 1, 7, 99, 40000, 60001, 123457, 999999} {
		s := SplitRevenue(total)
		if s.Sum() != total {
			t.Fatalf("total=%d split=%+v sum=%d", total, s, s.Sum())
		}
		if s.Gasoline < 0 || s.Caretaker < 0 || s.Owner < 0 {
			t.Fatalf("negative share for total=%d: %+v", total, s)
		}
	}
}

func TestSplitRevenue_ResidueGoesToOwner(t *testing.T) {
	s := SplitRevenue(7)
	// 7*10/100 = 0, 7*40/100 = 2
	if s.Gasoline != 0 || s.Caretaker != 2 || s.Owner != 5 {
		t.Fatalf("unexpected split: %+v", s)
	}
}
