/*
Package html renders B-tree animations as static HTML pages.

A page consists of frames. Each frame shows the message of a step and the
tree as it looked at that step, drawn as nested boxes. Keys referenced by the
step's highlight carry a CSS class named after their mark, e.g.
"mark-promoted", and are colored the same way as in DOT output.

Pages are built as golang.org/x/net/html node trees and serialized with
html.Render, so all keys and messages are escaped properly.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package html
