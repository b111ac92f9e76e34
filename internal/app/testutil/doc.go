// Package testutil provides fakes and fixtures shared by package tests.
//
//   - FakeTranscriber: in-memory provider.Transcriber with builder-style setup,
//     per-call latency and error injection.
//   - MockLLM: testify mock of provider.LLM.
//   - Fixtures: sample jobs and utterances.
package testutil
