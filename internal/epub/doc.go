// Package epub rewrites EPUB books for speed reading.
//
// Every XHTML/HTML document inside the container gets the leading part of each
// Russian word inside <p> wrapped in <strong>, punctuation wrapped in a muted
// <span class="punct">, a small stylesheet injected into <head>, and an empty
// "gap" paragraph after each paragraph so readers show a blank line.
//
// All other entries are copied through with their names, order, timestamps,
// compression method and attributes intact.
package epub
