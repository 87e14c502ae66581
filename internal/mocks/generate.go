// Package mocks provides mock implementations for testing the job-board resource layer.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the
// repository interfaces defined in internal/core. The mocks are generated using
// go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockJobRepository(ctrl)
//	mockRepo.EXPECT().List(gomock.Any()).Return(jobs, nil)
package mocks

// Generate mock for JobRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=job_repository_mock.go github.com/jobbox/jobbox-api/internal/core JobRepository

// Generate mock for UserRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_repository_mock.go github.com/jobbox/jobbox-api/internal/core UserRepository

// Generate mock for ApplicationRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=application_repository_mock.go github.com/jobbox/jobbox-api/internal/core ApplicationRepository

// Generate mock for SavedJobRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=saved_job_repository_mock.go github.com/jobbox/jobbox-api/internal/core SavedJobRepository

// Generate mock for CacheRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=cache_repository_mock.go github.com/jobbox/jobbox-api/internal/core CacheRepository
