// Package client assembles the local-first client runtime: the SQLite
// cache, the mutation queue, the remote HTTP adapter and the background
// flush job, wired into one App with a blocking Run loop.
package client
