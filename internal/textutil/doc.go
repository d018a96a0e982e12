// Package textutil provides the tokenizer and vector arithmetic shared by the
// script analyses.
//
// The primary use cases are:
//   - Splitting text into lowercase word tokens
//   - Counting n-grams over a token sequence
//   - Projecting n-gram counts onto a vocabulary shared by one comparison
//   - Computing cosine similarity between projected vectors
//
// Tokenization keeps every Unicode word run regardless of length so word
// counts and n-gram windows agree with each other. A Vocabulary lives only as
// long as the comparison that built it; nothing here keeps global state.
package textutil
