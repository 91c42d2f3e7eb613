package azdo

// PollRunResultWith exposes the poll loop with explicit options to the azdo_test package.
var PollRunResultWith = pollRunResult
