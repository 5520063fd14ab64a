/*
Package locktest provides mocks and helpers for testing handlers and
extensions. All implementations here are kept deterministic and
minimal, so a test failure points at the tested code and not at the
fixture.
*/
package locktest
