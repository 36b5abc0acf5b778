// Package dsp holds the per-sample building blocks the drum voices are made of:
// phase accumulators, decay envelopes, one-pole filters, a feedback FM operator
// pair and a seeded noise source.
//
// Every type is a small value with no allocation on the hot path; parameters are
// passed per call so a voice can change them between samples without touching
// primitive state.
package dsp
