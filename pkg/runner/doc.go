/*
Package runner implements the record pipeline: it pulls annotations from a
reader, applies one step to each, and writes the resulting lines.

It is the bridge between the per-record transforms and the outside world. The
runner owns the output buffering and the counters, and keeps the input order:
one record in, at most one line out, nothing reordered.

# Key Components

  - Runner: the read/apply/write loop.
  - Step: what to do with one record; AddStep, RemoveStep, ProjectStep,
    JoinStep and ConvertStep build the steps used by the commands.

# Usage

	eng := transform.New()
	r := runner.New(runner.WithLogger(logger))

	stats, err := r.Run(reader.New(os.Stdin), os.Stdout,
		runner.AddStep(eng, syntax.GFF, pairs, false, nil))
	if err != nil {
		log.Fatal(err)
	}
*/
package runner
