// Package pipeline runs one translation of a title and description into
// every target language. Languages are processed in order, one service call
// at a time; a failing language is recorded in its outcome and the run
// moves on to the next one.
package pipeline
