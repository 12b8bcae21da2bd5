// Package present turns bid results into what people read: currency
// strings, the crew handoff text, and show/hide decisions for whatever
// surface is rendering them. It never computes prices itself.
package present
