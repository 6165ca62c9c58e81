package service

import (
	"math/rand/v2"
	"slices"

	"github.com/park285/secret-santa-bot-go/internal/santa/model"
)

// PairingResult: 매칭 결과
// Assigned에는 배정이 확정된 참가자들이, Unpaired에는 짝이 없어 남은 참가자가 담긴다.
type PairingResult struct {
	Assigned []model.Participant
	Unpaired *model.Participant
}

// OddCount: 홀수 인원으로 인해 배정받지 못한 참가자가 있는지 확인한다.
func (r PairingResult) OddCount() bool { return r.Unpaired != nil }

// PairParticipants: 참가자들을 무작위로 섞은 뒤 둘씩 상호 배정한다.
// A가 B의 산타면 B도 A의 산타가 된다. 홀수 인원이면 마지막 한 명은 배정 없이 남는다.
func PairParticipants(participants []model.Participant) PairingResult {
	shuffled := slices.Clone(participants)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	var result PairingResult
	result.Assigned = make([]model.Participant, 0, len(shuffled))

	for i := 0; i+1 < len(shuffled); i += 2 {
		first := shuffled[i]
		second := shuffled[i+1]
		result.Assigned = append(result.Assigned,
			first.AssignTo(second.UserID),
			second.AssignTo(first.UserID),
		)
	}

	if len(shuffled)%2 == 1 {
		last := shuffled[len(shuffled)-1]
		result.Unpaired = &last
	}
	return result
}
