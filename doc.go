/*
go-rotframe reconstructs the true oriented bounding box of objects detected
in two independently rotated views of the same image, and scores 360 degree
angle classification predictions on a circular (wrap-around) domain.

The root package holds the shared detection record type, label file parsing
and angle arithmetic.  The preprocess package maps coordinates between the
primary frame and its rotated counterpart, postprocess recovers oriented
boxes from matched detection pairs, and evaluate turns ranked
angle-probability vectors into top-1/top-K accuracy with a threshold sweep
and error buckets.  Rendering of annotated images and accuracy charts lives
in the render and plot packages.

See example code and usage in the example subdirectory.
*/
package rotframe
