// Package resilience provides reliability and fault tolerance patterns for the application.
// It includes circuit breakers and retry logic guarding the upstream fetchers,
// so that a broken YouTube endpoint or RSS feed degrades to fallback data
// instead of stalling aggregation.
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.FeedFetchConfig())
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return fetchUpstream()
//	})
//
//	err := retry.WithBackoff(ctx, retry.FetchConfig(), func() error {
//	    return performOperation()
//	})
package resilience
