package syntax

// Kind space.
//
// Every Kind comes from a syntax-node entry of the catalogue, Root and
// Error included: Root is the top-level node every parse result is rooted
// at, and Error is the projection of the lexer's token.Error (a run of
// bytes no matcher accepts). Parser diagnostics are not stored in the
// tree. Which Kind a token becomes as a leaf is documented on Of in
// generated.go.
//
// Kind values are stable within a build but not across catalogue edits;
// callers persisting them across a generator run do so at their own risk.
