package server

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/time/rate"
)

// rateLimiter enforces a per-IP request budget on expensive routes.
type rateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*rate.Limiter
	rateLimit rate.Limit
	burst     int
}

func newRateLimiter(limit rate.Limit, burst int) *rateLimiter {
	return &rateLimiter{
		visitors:  make(map[string]*rate.Limiter),
		rateLimit: limit,
		burst:     burst,
	}
}

func (rl *rateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, exists := rl.visitors[ip]; exists {
		return limiter
	}

	limiter := rate.NewLimiter(rl.rateLimit, rl.burst)
	rl.visitors[ip] = limiter

	// Drop idle IPs so the map does not grow without bound
	go func() {
		time.Sleep(10 * time.Minute)
		rl.mu.Lock()
		delete(rl.visitors, ip)
		rl.mu.Unlock()
	}()

	return limiter
}

// limit wraps a route handler with the per-IP limiter.
func (rl *rateLimiter) limit(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !rl.getLimiter(ip).Allow() {
			respondError(w, http.StatusTooManyRequests, "too many requests, please try again later")
			return
		}

		next(w, r, ps)
	}
}
