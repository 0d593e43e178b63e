package model

// Invocation is the state shared by the stages of one pipeline run.
// Concurrency model:
//   - Each run owns its Invocation and its Job; stages mutate the Job in place.
//   - Rates is read-only and may be shared across runs.
//   - Stages never keep a reference to an Invocation after returning.
type Invocation struct {
	Job   *Job
	Rates RateTable
}
