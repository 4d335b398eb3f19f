/*
Package transferenc parses and generates the HTTP Transfer-Encoding header
(RFC 7230 Section 3.3.1).

The header lists transfer codings in the order they were applied, so they
must be undone in reverse. Everything in this package yields codings in
decode order: the last coding listed, which is the first one a recipient
has to decode, comes first. The four codings registered with IANA (chunked,
compress, deflate, gzip) are identified as StdCoding values; any other name
is passed through as it appeared, for the caller to interpret or reject.

Parsing never errors, instead returning whatever it can easily salvage:
an unknown, empty or garbled element is still yielded, with only its
surrounding whitespace removed. Do not assume that names returned in
Coding.Name conform to the token grammar of the protocol; compare them
case-insensitively if you interpret them further.

Parsed names are substrings of the input, not copies. They remain valid
exactly as long as the string they were parsed from.
*/
package transferenc
