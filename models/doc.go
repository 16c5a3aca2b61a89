/*
Package models defines the request and response types of the JSON API.

Paper definitions (PaperSpec/ChoiceSpec) and ballots (CastVoteRequest) are
recursive to mirror the preferenced paper tree: a choice may nest a
sub-paper, and a ballot for such a choice may nest the sub-ballot cast on
it.
*/
package models
