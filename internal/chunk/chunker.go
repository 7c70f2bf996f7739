// Package chunk groups encoded vCard blocks into output files bounded by
// byte size or record count. Writes are delegated to a Sink; the chunker
// only decides boundaries and never splits a block across files.
package chunk

import "fmt"

// Block is one encoded vCard. Name is the suggested per-contact file stem;
// sinks may ignore it when chunks hold multiple blocks.
type Block struct {
	Name string
	Data []byte
}

// Chunk is one output file's worth of blocks. Seq is 1-based and names the
// file when a sequence suffix is needed.
type Chunk struct {
	Seq    int
	Blocks []Block
	Bytes  int
}

// Sink receives finalized chunks.
type Sink interface {
	WriteChunk(Chunk) error
}

// Policy sets the splitting limits. Zero values mean unlimited; when both
// MaxRecords and MaxBytes are set, whichever triggers first completes the
// chunk. SingleFile disables splitting entirely.
type Policy struct {
	MaxRecords int
	MaxBytes   int64
	SingleFile bool
}

// Limited reports whether any splitting limit is in effect.
func (p Policy) Limited() bool {
	return !p.SingleFile && (p.MaxRecords > 0 || p.MaxBytes > 0)
}

// Chunker accumulates blocks into chunks under a Policy. No state spans
// chunk boundaries except the in-progress chunk's counters, so a run can
// be abandoned at any block boundary without cleanup.
type Chunker struct {
	policy Policy
	sink   Sink
	seq    int
	cur    Chunk
}

// New creates a Chunker writing finalized chunks to sink.
func New(policy Policy, sink Sink) *Chunker {
	return &Chunker{policy: policy, sink: sink}
}

// Add places one block. It may complete the in-progress chunk first (when
// appending would exceed the byte limit) or after (when a limit is
// reached). A single block larger than the byte limit still lands alone in
// its own immediately-completed chunk.
func (c *Chunker) Add(b Block) error {
	if c.policy.SingleFile {
		c.append(b)
		return nil
	}

	if c.policy.MaxBytes > 0 && len(c.cur.Blocks) > 0 &&
		int64(c.cur.Bytes+len(b.Data)) > c.policy.MaxBytes {
		if err := c.complete(); err != nil {
			return err
		}
	}

	c.append(b)

	if c.policy.MaxRecords > 0 && len(c.cur.Blocks) >= c.policy.MaxRecords {
		return c.complete()
	}
	if c.policy.MaxBytes > 0 && int64(c.cur.Bytes) > c.policy.MaxBytes {
		// Oversized single block: never truncated, emitted alone.
		return c.complete()
	}
	return nil
}

// Flush finalizes any non-empty in-progress chunk. Call it at end of
// stream regardless of whether a limit was ever reached.
func (c *Chunker) Flush() error {
	if len(c.cur.Blocks) == 0 {
		return nil
	}
	return c.complete()
}

// Chunks returns how many chunks have been finalized so far.
func (c *Chunker) Chunks() int {
	return c.seq
}

func (c *Chunker) append(b Block) {
	c.cur.Blocks = append(c.cur.Blocks, b)
	c.cur.Bytes += len(b.Data)
}

func (c *Chunker) complete() error {
	c.seq++
	c.cur.Seq = c.seq
	if err := c.sink.WriteChunk(c.cur); err != nil {
		return fmt.Errorf("write chunk %d: %w", c.cur.Seq, err)
	}
	c.cur = Chunk{}
	return nil
}
