// Package experiment drives batches of annealing runs over graph
// datasets and aggregates the results.
//
// A batch is a list of Spec entries (dataset name, GEXF path, cover
// size). The Runner loads each graph, repeats the search with
// decorrelated seeds, times every run and folds the scores into one
// Summary per dataset (best, mean and standard deviation of the
// covered-edge count, mean runtime).
//
// Specs that cannot be run (unreadable file, cover size out of range)
// are logged and skipped so one bad dataset does not abort the batch.
package experiment
