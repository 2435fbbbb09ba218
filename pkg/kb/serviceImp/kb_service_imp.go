package serviceImp

import (
	"math"
	"sort"
	"strings"

	"github.com/UmashankarGouda/KrishiChakra/entities"
	"github.com/UmashankarGouda/KrishiChakra/pkg/kb/embedder"
	"github.com/UmashankarGouda/KrishiChakra/pkg/kb/repository"
)

type Svc struct {
	r   repository.KBRepository
	emb *embedder.Client
}

func New(r repository.KBRepository, e *embedder.Client) *Svc { return &Svc{r: r, emb: e} }

// chunkText splits at the first newline after maxRunes so advisory
// paragraphs stay whole.
func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = 1000
	}
	parts := []string{}
	cur := strings.Builder{}
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			parts = append(parts, cur.String())
			cur.Reset()
			count = 0
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

func (s *Svc) UpsertDocument(title, tags, crop, region, text, sourceURL string) (*entities.AgroDocument, int, error) {
	d := &entities.AgroDocument{Title: title, Tags: tags, Crop: crop, Region: region, SourceURL: sourceURL}
	if err := s.r.CreateDoc(d); err != nil {
		return nil, 0, err
	}

	chs := chunkText(text, 1000)
	if len(chs) == 0 {
		return d, 0, nil
	}

	var embs [][]float32
	if s.emb != nil {
		var err error
		embs, err = s.emb.Embed(chs)
		if err != nil {
			// keep the chunks, search falls back to keyword matching
			embs = nil
		}
	}

	rows := make([]entities.AgroChunk, len(chs))
	for i := range chs {
		var embBytes []byte
		if embs != nil && i < len(embs) {
			embBytes = embedder.FloatsToBytes(embs[i])
		}
		rows[i] = entities.AgroChunk{DocID: d.DocID, Ord: i, Text: chs[i], Embedding: embBytes}
	}

	if err := s.r.BulkInsertChunks(rows); err != nil {
		return nil, 0, err
	}
	return d, len(rows), nil
}

func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func (s *Svc) Search(query string, k int) ([]entities.AgroChunk, error) {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 {
		return nil, nil
	}

	var qvec []float32
	if s.emb != nil {
		if vec, err := s.emb.Embed([]string{q}); err == nil && len(vec) > 0 {
			qvec = vec[0]
		}
	}

	chunks, err := s.r.AllChunks()
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	type scored struct {
		ch entities.AgroChunk
		sc float64
	}
	list := make([]scored, 0, len(chunks))

	if len(qvec) > 0 {
		for _, ch := range chunks {
			sc := cosine(qvec, embedder.BytesToFloats(ch.Embedding))
			if sc > 0 {
				list = append(list, scored{ch, sc})
			}
		}
	}
	if len(list) == 0 {
		// keyword fallback: score by how many query terms the chunk contains
		terms := strings.Fields(strings.ToLower(q))
		for _, ch := range chunks {
			low := strings.ToLower(ch.Text)
			sc := 0.0
			for _, t := range terms {
				if strings.Contains(low, t) {
					sc++
				}
			}
			if sc > 0 {
				list = append(list, scored{ch, sc})
			}
		}
	}
	if len(list) == 0 {
		return nil, nil
	}

	sort.SliceStable(list, func(i, j int) bool { return list[i].sc > list[j].sc })
	if k > len(list) {
		k = len(list)
	}
	out := make([]entities.AgroChunk, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, list[i].ch)
	}
	return out, nil
}

func (s *Svc) ListDocuments() ([]entities.AgroDocument, error) {
	return s.r.ListDocs()
}

func (s *Svc) DocsMeta(ids []uint) (map[uint]entities.AgroDocument, error) {
	return s.r.DocsByIDs(ids)
}
