// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election is the in-memory voting and tallying core: one session at
a time, a tree of voting papers, vote casting with eligibility and
double-vote guards, and score/turnout computation.

# Model

A [Board] owns the administrator identity and the current [Session]. The
administrator builds [SessionParameters] (a schedule plus ordered
[VotingPaper] ballots) and initializes a session with a list of guarantor
[Person]s. The session starts running once the admin marks it ready, every
guarantor approves, and the wall clock enters the window; running state is
derived on every query, never stored.

A paper accepts a [Vote] only while its session is running, only from a
person its [Decider] admits, and at most once per person. Under
[MethodPreferenced] a [Choice] may open a nested sub-paper; the vote on
the sub-paper is an independent AddVote call with its own guards.

Once the session stops running, [VotingPaper.Results] tallies scores
(ascending), turnout against the population eligible for that paper's own
decider, and relative scores.

# Errors

Every error wraps one of [ErrInvalidArgument], [ErrIllegalState] or
[ErrMissingValue]; classify with errors.Is. Operations fail fast with no
partial mutation.

# Concurrency

One mutex per paper makes the already-voted check and the vote record
atomic and gives Results a consistent snapshot; the session and board have
their own locks. Papers in a preferenced tree are independent lock scopes.
*/
package election
