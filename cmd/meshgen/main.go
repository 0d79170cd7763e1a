package main

// Command line front end. A domain comes in as a file or on stdin, e.g.
//
//	meshgen triangulate -i points -f yaml < frame.txt
//
// and the mesh goes out on stdout, or to --output.
func main() {
	Execute()
}
