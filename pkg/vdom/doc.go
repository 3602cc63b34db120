// Package vdom defines the virtual DOM node model consumed by the renderer:
// VNode descriptors built with H, the component contract (functional and
// classful), and the ordered attribute types that keep output deterministic.
//
// Trees built here are immutable inputs. The renderer in pkg/render walks
// them and never writes back; the same tree renders to identical bytes every
// time.
package vdom
