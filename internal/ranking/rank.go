// Package ranking orchestrates the batch scoring pipeline: one job
// description against N resumes, producing a ranked candidate table.
package ranking

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-ranker/internal/embedding"
	"github.com/jonathan/resume-ranker/internal/experience"
	"github.com/jonathan/resume-ranker/internal/extraction"
	"github.com/jonathan/resume-ranker/internal/scoring"
	"github.com/jonathan/resume-ranker/internal/skills"
	"github.com/jonathan/resume-ranker/internal/textproc"
)

// Pipeline wires the collaborators for one ranking run. The skill catalog
// and the job-description embedding are computed once and shared read-only
// across resumes; resumes are processed one at a time, to completion, in
// input order.
type Pipeline struct {
	extractor  extraction.TextExtractor
	normalizer textproc.Normalizer
	embedder   embedding.Embedder
	catalog    skills.Catalog
	expCap     float64
	log        *zap.Logger
}

// Options configures a Pipeline. Zero values fall back to working defaults
// so a Pipeline is usable with only an Embedder set.
type Options struct {
	Extractor     extraction.TextExtractor
	Normalizer    textproc.Normalizer
	Embedder      embedding.Embedder
	Catalog       skills.Catalog
	ExperienceCap float64
	Logger        *zap.Logger
}

// NewPipeline builds a Pipeline from opts, filling in defaults: plain-text
// file extraction, the stop-word cleaner, the built-in skill catalog and a
// 10-year experience cap.
func NewPipeline(opts Options) *Pipeline {
	p := &Pipeline{
		extractor:  opts.Extractor,
		normalizer: opts.Normalizer,
		embedder:   opts.Embedder,
		catalog:    opts.Catalog,
		expCap:     opts.ExperienceCap,
		log:        opts.Logger,
	}
	if p.extractor == nil {
		p.extractor = extraction.FileExtractor{}
	}
	if p.catalog == nil {
		p.catalog = skills.Load("")
	}
	if p.expCap <= 0 {
		p.expCap = experience.DefaultCap
	}
	if p.log == nil {
		p.log = zap.NewNop()
	}
	return p
}

// Rank scores every resume against the job description and returns the
// ranked table. A resume that fails to embed is logged and skipped; the
// batch always completes. An empty or blank job description is allowed:
// every candidate then scores zero similarity and zero skill score, and
// ordering is driven by the experience term.
func (p *Pipeline) Rank(ctx context.Context, resumePaths []string, jdText string) Table {
	log := p.log.With(zap.String("run_id", uuid.NewString()))

	jdClean := p.normalize(jdText)
	jdSkills := skills.Extract(jdClean, p.catalog)

	var jdVector []float32
	if jdClean != "" {
		vectors, err := p.embedder.Embed(ctx, []string{jdClean})
		if err != nil {
			log.Warn("job description embedding failed, similarity disabled for this run", zap.Error(err))
		} else if len(vectors) > 0 {
			jdVector = vectors[0]
		}
	}
	log.Info("job description processed",
		zap.Int("jd_skills", len(jdSkills)),
		zap.Bool("jd_embedded", jdVector != nil),
		zap.Int("resumes", len(resumePaths)))

	candidates := make([]Candidate, 0, len(resumePaths))
	for _, path := range resumePaths {
		candidate, err := p.scoreResume(ctx, path, jdVector, jdSkills)
		if err != nil {
			log.Warn("skipping resume", zap.String("resume", path), zap.Error(err))
			continue
		}
		candidates = append(candidates, candidate)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].FinalScore != candidates[j].FinalScore {
			return candidates[i].FinalScore > candidates[j].FinalScore
		}
		return candidates[i].Similarity > candidates[j].Similarity
	})

	return Table{Candidates: candidates, JDEmbedded: jdVector != nil}
}

// scoreResume runs the per-resume stages. Missing or unsupported documents
// come back as empty text and still produce a (near-zero) record; only an
// embedder failure is unrecoverable for the candidate.
func (p *Pipeline) scoreResume(ctx context.Context, path string, jdVector []float32, jdSkills []string) (Candidate, error) {
	raw := p.extractor.ExtractText(path)
	clean := p.normalize(raw)
	matched := skills.Extract(clean, p.catalog)

	years, found := experience.ExtractYears(raw)
	expScore := experience.Normalize(years, found, p.expCap)
	if !found {
		years = 0
	}

	var resumeVector []float32
	if clean != "" {
		vectors, err := p.embedder.Embed(ctx, []string{clean})
		if err != nil {
			return Candidate{}, fmt.Errorf("embedding resume: %w", err)
		}
		if len(vectors) > 0 {
			resumeVector = vectors[0]
		}
	}

	similarity := scoring.CosineSimilarity(resumeVector, jdVector)
	skillScore := scoring.SkillOverlap(jdSkills, matched)

	return Candidate{
		Name:            filepath.Base(path),
		Path:            path,
		Similarity:      round4(similarity),
		SkillScore:      round4(skillScore),
		ExperienceYears: years,
		ExperienceScore: expScore,
		FinalScore:      scoring.Combine(similarity, skillScore, expScore),
		MatchedSkills:   matched,
	}, nil
}

// normalize applies the configured Normalizer, falling back to the simple
// cleaned form when none is set.
func (p *Pipeline) normalize(raw string) string {
	if p.normalizer == nil {
		return textproc.Clean(raw)
	}
	return p.normalizer.Normalize(raw)
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
