package service

import (
	"fmt"
	"testing"

	"github.com/park285/secret-santa-bot-go/internal/santa/model"
)

func makeParticipants(n int) []model.Participant {
	out := make([]model.Participant, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.Participant{
			ID:       uint64(i + 1),
			GameID:   "room1:game",
			UserID:   fmt.Sprintf("u%d", i+1),
			Username: fmt.Sprintf("user%d", i+1),
		})
	}
	return out
}

func TestPairParticipants_Mutual(t *testing.T) {
	participants := makeParticipants(8)

	result := PairParticipants(participants)
	if result.OddCount() {
		t.Fatal("expected no unpaired participant for even count")
	}
	if len(result.Assigned) != len(participants) {
		t.Fatalf("expected %d assigned, got %d", len(participants), len(result.Assigned))
	}

	assignedTo := make(map[string]string, len(result.Assigned))
	for _, p := range result.Assigned {
		if !p.IsAssigned() {
			t.Fatalf("participant %s has no assignment", p.UserID)
		}
		if *p.AssignedToID == p.UserID {
			t.Fatalf("participant %s assigned to self", p.UserID)
		}
		assignedTo[p.UserID] = *p.AssignedToID
	}

	// A가 B의 산타면 B도 A의 산타여야 한다.
	for santa, receiver := range assignedTo {
		if assignedTo[receiver] != santa {
			t.Errorf("pairing not mutual: %s -> %s -> %s", santa, receiver, assignedTo[receiver])
		}
	}
}

func TestPairParticipants_OddCount(t *testing.T) {
	participants := makeParticipants(5)

	result := PairParticipants(participants)
	if !result.OddCount() {
		t.Fatal("expected one unpaired participant for odd count")
	}
	if len(result.Assigned) != 4 {
		t.Fatalf("expected 4 assigned, got %d", len(result.Assigned))
	}
	if result.Unpaired.IsAssigned() {
		t.Errorf("unpaired participant %s should have no assignment", result.Unpaired.UserID)
	}

	for _, p := range result.Assigned {
		if p.UserID == result.Unpaired.UserID {
			t.Errorf("unpaired participant %s also appears in assigned list", p.UserID)
		}
	}
}

func TestPairParticipants_Empty(t *testing.T) {
	result := PairParticipants(nil)
	if result.OddCount() {
		t.Error("expected no unpaired participant for empty input")
	}
	if len(result.Assigned) != 0 {
		t.Errorf("expected no assignments, got %d", len(result.Assigned))
	}
}

func TestPairParticipants_DoesNotMutateInput(t *testing.T) {
	participants := makeParticipants(4)

	PairParticipants(participants)
	for _, p := range participants {
		if p.IsAssigned() {
			t.Errorf("input participant %s was mutated", p.UserID)
		}
	}
}
