package vigenere

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultMaxKeyLength is the longest key length tried when none is configured.
	DefaultMaxKeyLength = 12

	// DefaultWorkers bounds how many key lengths are evaluated at once.
	DefaultWorkers = 4
)

// Candidate is the best key found for one trial key length.
type Candidate struct {
	Length int
	Key    string
	// Score is the Deviation of the whole ciphertext decrypted under Key.
	Score float64
}

// Result is the outcome of a key search.
type Result struct {
	Key       string
	Plaintext string
	Score     float64

	// Candidates holds one entry per tried length, ascending by length.
	Candidates []Candidate
}

// Analyzer searches key lengths 1..MaxKeyLength for the key whose decryption
// lies closest to English.
type Analyzer struct {
	maxKeyLength int
	workers      int
	logger       *zap.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithMaxKeyLength sets the largest key length to try.
func WithMaxKeyLength(n int) Option {
	return func(a *Analyzer) { a.maxKeyLength = n }
}

// WithWorkers sets how many key lengths may be evaluated concurrently.
// Values below 1 fall back to DefaultWorkers.
func WithWorkers(n int) Option {
	return func(a *Analyzer) { a.workers = n }
}

// WithLogger sets the logger used to report candidates.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAnalyzer returns an Analyzer with defaults overridden by opts.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		maxKeyLength: DefaultMaxKeyLength,
		workers:      DefaultWorkers,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.workers < 1 {
		a.workers = DefaultWorkers
	}
	return a
}

// Analyze predicts the key of ciphertext and decrypts it.
//
// Key lengths may finish in any order; the winner is chosen afterwards by
// walking candidates in ascending length, replacing the best only on a
// strictly lower score.
//
// Lengths beyond the number of letters are not tried: from that point on every
// column holds at most one letter, each decrypts to 'E', and the score can only
// tie the shorter length, which wins. A ciphertext without letters therefore
// tries length 1 alone and yields key "A" with a plaintext equal to the input.
func (a *Analyzer) Analyze(ctx context.Context, ciphertext string) (*Result, error) {
	if a.maxKeyLength < 1 {
		return nil, fmt.Errorf("max key length %d: %w", a.maxKeyLength, ErrInvalidKeyLength)
	}

	letters := Filter(ciphertext)
	maxLength := min(a.maxKeyLength, max(len(letters), 1))
	if maxLength < a.maxKeyLength {
		a.logger.Debug("capped key length at letter count",
			zap.Int("max_key_length", a.maxKeyLength),
			zap.Int("letters", len(letters)),
		)
	}

	candidates := make([]Candidate, maxLength)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for length := 1; length <= maxLength; length++ {
		g.Go(func() error {
			candidate, err := evaluateLength(gctx, letters, length)
			if err != nil {
				return err
			}
			candidates[length-1] = candidate
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("search key lengths: %w", err)
	}

	best := Candidate{Score: math.Inf(1)}
	for _, candidate := range candidates {
		a.logger.Debug("candidate key",
			zap.Int("length", candidate.Length),
			zap.String("key", candidate.Key),
			zap.Float64("score", candidate.Score),
		)
		if candidate.Score < best.Score {
			best = candidate
		}
	}

	a.logger.Info("predicted key",
		zap.String("key", best.Key),
		zap.Int("length", best.Length),
		zap.Float64("score", best.Score),
		zap.Int("letters", len(letters)),
	)

	return &Result{
		Key:        best.Key,
		Plaintext:  Decrypt(ciphertext, best.Key),
		Score:      best.Score,
		Candidates: candidates,
	}, nil
}

// AnalyzeLength solves the key for a single, known key length.
func (a *Analyzer) AnalyzeLength(ctx context.Context, ciphertext string, keyLength int) (*Result, error) {
	if keyLength < 1 {
		return nil, fmt.Errorf("key length %d: %w", keyLength, ErrInvalidKeyLength)
	}

	candidate, err := evaluateLength(ctx, Filter(ciphertext), keyLength)
	if err != nil {
		return nil, err
	}
	a.logger.Info("solved fixed-length key",
		zap.String("key", candidate.Key),
		zap.Int("length", keyLength),
		zap.Float64("score", candidate.Score),
	)

	return &Result{
		Key:        candidate.Key,
		Plaintext:  Decrypt(ciphertext, candidate.Key),
		Score:      candidate.Score,
		Candidates: []Candidate{candidate},
	}, nil
}

func evaluateLength(ctx context.Context, letters string, length int) (Candidate, error) {
	shifts, err := solveShifts(ctx, letters, length)
	if err != nil {
		return Candidate{}, err
	}
	return Candidate{
		Length: length,
		Key:    shiftsToKey(shifts),
		Score:  Deviation(decryptWithKey(letters, shifts)),
	}, nil
}

// PredictKey returns the key that Analyze finds for ciphertext when trying
// lengths 1..maxKeyLength.
func PredictKey(ciphertext string, maxKeyLength int) (string, error) {
	result, err := NewAnalyzer(WithMaxKeyLength(maxKeyLength)).Analyze(context.Background(), ciphertext)
	if err != nil {
		return "", err
	}
	return result.Key, nil
}
