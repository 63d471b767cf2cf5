// Package rmvc is a small front-controller web framework.
//
// A Dispatcher owns ordered lists of handler mappings and handler adapters.
// For each request it asks the mappings, in order, for a handler, picks the
// first adapter that supports that handler, invokes it and renders the
// returned ModelAndView through its View. Any failure along the way is logged
// once and surfaced to the host as a *DispatchError.
//
// The mapping, adapter, view and send packages hold the stock implementations.
// Server and HTTPHandler are the two hosts.
package rmvc
