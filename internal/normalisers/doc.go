// Package normalisers provides implementations of the Normaliser
// interface for vector-markup formats. Each normaliser knows how to
// extract a symbol entry from one format; svg is the only format the
// converter currently handles.
package normalisers
