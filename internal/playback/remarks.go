package playback

import (
	"math/rand"
	"sync"
	"time"
)

// closingRemarks is the pool of ending lines delivered after a deck.
var closingRemarks = []string{
	"So, does everything look good? Great! Because I can't hear you — I just read off the presentation.",
	"And that's the last slide! If you have questions, please write them on a sticky note and throw them at the screen.",
	"Presentation complete! I'd take a bow, but I don't have a body. Or legs. Or... anything, really.",
	"That's all folks! I'd ask for applause, but honestly, the silence is less awkward for both of us.",
	"Any questions? Just kidding — I literally cannot process your answers. Good luck out there!",
	"And we're done! If that didn't make sense, don't worry — I just read the words, I don't understand them either.",
	"Thank you for listening! Or sleeping. Either way, my job here is done.",
	"End of presentation! Fun fact: I rehearsed this zero times and still nailed it. Probably.",
	"That concludes today's slides. Remember, if you didn't learn anything, that's a content problem, not a me problem.",
	"And scene! I hope that was informative. If not, at least it was... audible?",
	"Presentation over! I'd stick around for the Q and A, but I have another deck to read in five minutes.",
	"We made it to the end! High five! Oh wait, I'm software. Air five? No air either. Never mind.",
	"That's a wrap! If you need me to read it again, just hit F5. I'll be here. I'm always here.",
	"All done! I hope I pronounced everything correctly. If not, blame the person who made the slides.",
	"And that's the presentation! Now if you'll excuse me, I need to go recharge. Just kidding — I run on pure determination.",
}

// RemarkStrategy selects how the pool picks the next remark.
type RemarkStrategy int

const (
	// StrategyRoundRobin cycles through the pool in order. Deterministic,
	// and the default.
	StrategyRoundRobin RemarkStrategy = iota
	// StrategyRandom picks uniformly at random.
	StrategyRandom
)

// String returns the string representation of the strategy.
func (s RemarkStrategy) String() string {
	switch s {
	case StrategyRoundRobin:
		return "round-robin"
	case StrategyRandom:
		return "random"
	default:
		return "unknown"
	}
}

// RemarkPool hands out closing remarks. It is owned by the controller that
// uses it; there is no shared process-wide rotation state.
type RemarkPool struct {
	mu       sync.Mutex
	remarks  []string
	next     int
	strategy RemarkStrategy
	rng      *rand.Rand
}

// NewRemarkPool creates a pool over the built-in remarks.
func NewRemarkPool(strategy RemarkStrategy) *RemarkPool {
	return &RemarkPool{
		remarks:  closingRemarks,
		strategy: strategy,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Next returns the next remark according to the pool's strategy.
func (p *RemarkPool) Next() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.remarks) == 0 {
		return ""
	}
	if p.strategy == StrategyRandom {
		return p.remarks[p.rng.Intn(len(p.remarks))]
	}

	remark := p.remarks[p.next]
	p.next = (p.next + 1) % len(p.remarks)
	return remark
}
