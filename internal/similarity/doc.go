// Package similarity scores long speeches against each other with n-gram
// cosine similarity.
//
// An Engine filters two speech sets down to their long speeches, builds a
// vocabulary scoped to exactly those two sets, projects every speech onto it
// and fills a row-major similarity matrix. Candidate pairs above a threshold
// feed the exact diff stage; self-similarity sums rank speeches by how
// representative they are of their own set.
package similarity
